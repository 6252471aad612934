package billing

import (
	"context"
	"fmt"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/dto"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/repository"
)

// ProfileUseCase read access to the organization profile (org info + tax rate).
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewProfileUseCase builds the use case.
func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// GetProfile returns the configured organization profile, ErrNotFound when the
// deployment has not been set up yet.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProfileResponse{
		OrgName:    p.OrgName,
		Email:      p.Email,
		Phone:      p.Phone,
		Address:    p.Address,
		TaxPercent: p.TaxPercent,
	}, nil
}

package repository

import "github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"

// ProfileRepository is the persistence port for the single organization profile.
// Get returns (nil, nil) when no profile has been configured yet; callers treat
// that as a zero tax rate, not as an error.
type ProfileRepository interface {
	Get() (*entity.Profile, error)
	Upsert(profile *entity.Profile) error
}

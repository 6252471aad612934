package repository

import "github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"

// UserRepository is the persistence port for User. Implementations return
// (nil, nil) when a lookup matches no row.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

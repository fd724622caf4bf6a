package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// List devuelve los usuarios en orden de inserción. limit <= 0 = todos.
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}

package repository

import "github.com/tu-usuario/stockledger-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve (nil, nil) si el email no está registrado.
	FindByEmail(email string) (*entity.User, error)
	// FindByCPF devuelve (nil, nil) si el CPF no está registrado.
	FindByCPF(cpf string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

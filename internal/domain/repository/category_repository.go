package repository

import "github.com/tu-usuario/stockledger-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías (scoped por owner).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id, ownerID string) (*entity.Category, error)
	ListByOwner(ownerID string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id, ownerID string) error
}

package repository

import "github.com/tu-usuario/stockledger-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores (scoped por owner).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id, ownerID string) (*entity.Supplier, error)
	ListByOwner(ownerID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id, ownerID string) error
}

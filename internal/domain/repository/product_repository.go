package repository

import "github.com/tu-usuario/stockledger-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Todas las operaciones están scoped por ownerID: un producto de otro usuario
// se comporta como inexistente (nil, nil), nunca como "sin permiso".
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe producto con ese ID para ese owner.
	GetByID(id, ownerID string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (SELECT ... FOR UPDATE)
	// hasta el fin de la transacción. Solo tiene sentido dentro de un TxRunner;
	// es lo que serializa dos movimientos concurrentes sobre el mismo producto.
	GetForUpdate(id, ownerID string) (*entity.Product, error)
	// UpdateQuantity fija la cantidad materializada. Uso exclusivo del ledger.
	UpdateQuantity(id, ownerID string, quantity int64) error
	Update(product *entity.Product) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.ProductView, error)
	// ListLowStock productos con min_quantity > 0 y quantity <= min_quantity (alerta).
	ListLowStock(ownerID string) ([]*entity.ProductView, error)
	Delete(id, ownerID string) error
}

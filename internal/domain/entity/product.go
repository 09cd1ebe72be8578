package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de un usuario.
// Quantity es el total materializado: después de la creación solo lo muta el
// ledger (ApplyMovement), nunca el CRUD de productos. Invariante: Quantity >= 0.
// MinQuantity/MaxQuantity son umbrales de alerta, no se imponen en movimientos.
type Product struct {
	ID          string
	OwnerID     string
	Name        string
	Quantity    int64
	Price       decimal.Decimal
	CategoryID  *string
	SupplierID  *string
	MinQuantity int64
	MaxQuantity *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductView producto junto con los nombres de categoría y proveedor (para listados).
type ProductView struct {
	Product
	CategoryName *string
	SupplierName *string
}

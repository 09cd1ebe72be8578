package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es la cantidad inicial; después de crear, solo se muta vía movimientos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id,omitempty"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
	MinQuantity int64           `json:"min_quantity" validate:"min=0"`
	MaxQuantity *int64          `json:"max_quantity,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity:
// la cantidad se maneja exclusivamente vía movimientos).
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id,omitempty"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
	MinQuantity int64           `json:"min_quantity" validate:"min=0"`
	MaxQuantity *int64          `json:"max_quantity,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	SupplierID   *string         `json:"supplier_id,omitempty"`
	SupplierName *string         `json:"supplier_name,omitempty"`
	MinQuantity  int64           `json:"min_quantity"`
	MaxQuantity  *int64          `json:"max_quantity,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

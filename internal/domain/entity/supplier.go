package entity

import "time"

// Supplier representa un proveedor asociado a productos de un usuario.
type Supplier struct {
	ID        string
	OwnerID   string
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

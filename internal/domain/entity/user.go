package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario de la aplicación. Todos los recursos
// (productos, categorías, proveedores, movimientos) están scoped por su ID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CPF          string
	Phone        string
	Role         string // admin | user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

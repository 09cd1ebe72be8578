package entity

import "time"

// Category agrupa productos de un usuario.
type Category struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

package repository

import "github.com/tu-usuario/stockledger-api/internal/domain/entity"

// MovementRepository puerto del log de movimientos. Solo inserta y lista:
// los movimientos confirmados jamás se actualizan ni se borran.
type MovementRepository interface {
	// Create inserta el movimiento; OccurredAt lo asigna la base de datos y se
	// devuelve en el mismo struct.
	Create(movement *entity.Movement) error
	// ListByOwner devuelve los movimientos del usuario junto con el nombre del
	// producto, ordenados por occurred_at descendente (más reciente primero).
	ListByOwner(ownerID string, limit, offset int) ([]*entity.MovementView, error)
}

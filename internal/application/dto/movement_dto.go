package dto

import "time"

// RegisterMovementRequest body para POST /api/products/{id}/receipt y /issue.
type RegisterMovementRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

// MovementResult salida de un movimiento aplicado con éxito.
type MovementResult struct {
	MovementID  string `json:"movement_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// MovementResponse una entrada del historial de movimientos.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"` // entrada | salida
	Amount      int64     `json:"amount"`
	Note        string    `json:"note,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// MovementListResponse historial paginado, más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

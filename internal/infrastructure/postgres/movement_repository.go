package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el log es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. occurred_at lo asigna la DB (now()) para que
// el orden del historial coincida con el orden de commit, y se devuelve en m.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	note := (*string)(nil)
	if m.Note != "" {
		note = &m.Note
	}
	query := `
		INSERT INTO stock_movements (id, product_id, owner_id, kind, amount, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING occurred_at`
	err := r.q.QueryRow(context.Background(), query,
		m.ID, m.ProductID, m.OwnerID, m.Kind, m.Amount, note,
	).Scan(&m.OccurredAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByOwner lista los movimientos del usuario con el nombre del producto,
// más reciente primero.
func (r *MovementRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.MovementView, error) {
	query := `
		SELECT m.id, m.product_id, m.owner_id, m.kind, m.amount, m.note, m.occurred_at,
		       p.name AS product_name
		FROM stock_movements m
		JOIN products p ON m.product_id = p.id
		WHERE m.owner_id = $1
		ORDER BY m.occurred_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementView
	for rows.Next() {
		var m entity.MovementView
		var note *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.OwnerID, &m.Kind, &m.Amount,
			&note, &m.OccurredAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

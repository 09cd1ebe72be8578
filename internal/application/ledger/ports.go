package ledger

import (
	"context"

	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: si fn devuelve error
// (o el caller abandona el contexto antes del commit) se hace Rollback y no
// queda efecto parcial; si devuelve nil se hace Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

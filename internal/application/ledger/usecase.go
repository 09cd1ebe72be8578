package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// UseCase es el ledger de stock: aplica movimientos (entrada/salida) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y expone el historial.
// Es el único camino por el que se muta Product.Quantity después de la
// creación del producto, lo que mantiene el invariante
// quantity == suma de movimientos con signo, y quantity >= 0.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewUseCase construye el ledger. movRepo (sobre el pool) se usa solo para
// lecturas del historial; las escrituras pasan siempre por txRunner.
func NewUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// ApplyMovement ejecuta exactamente un movimiento de stock como operación atómica.
//
// La validación de entrada (amount > 0, kind reconocido) ocurre antes de abrir
// la transacción. Dentro de la transacción: se lee la cantidad actual con
// bloqueo de fila scoped por (productID, ownerID) — un producto de otro dueño
// es ErrNotFound, sin filtrar su existencia —, una salida que dejaría la
// cantidad en negativo aborta con InsufficientStockError (incluye la cantidad
// disponible), y en el camino feliz se actualiza la cantidad y se inserta el
// registro inmutable del movimiento. Commit al final; cualquier error hace
// Rollback completo: nunca se observa cantidad cambiada sin movimiento ni al revés.
//
// Dos llamadas idénticas producen dos movimientos y dos cambios de cantidad:
// el ledger no deduplica.
func (uc *UseCase) ApplyMovement(ctx context.Context, ownerID, productID, kind string, amount int64, note string) (*dto.MovementResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementKind(kind) {
		return nil, domain.ErrInvalidInput
	}

	var result dto.MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto hasta el fin de la transacción: dos
		// movimientos concurrentes sobre el mismo producto se serializan aquí.
		product, err := productRepo.GetForUpdate(productID, ownerID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			OwnerID:   product.OwnerID,
			Kind:      kind,
			Amount:    amount,
			Note:      note,
		}
		newQuantity := product.Quantity + mov.SignedAmount()
		if newQuantity < 0 {
			return &domain.InsufficientStockError{Available: product.Quantity}
		}

		if err := productRepo.UpdateQuantity(product.ID, product.OwnerID, newQuantity); err != nil {
			return err
		}
		// OccurredAt lo asigna la DB en el insert: el orden del historial
		// coincide con el orden de commit por producto.
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = dto.MovementResult{MovementID: mov.ID, NewQuantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMovements devuelve el historial del usuario, más reciente primero,
// con el nombre del producto resuelto.
func (uc *UseCase) ListMovements(ctx context.Context, ownerID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.ListByOwner(ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Kind:        m.Kind,
			Amount:      m.Amount,
			Note:        m.Note,
			OccurredAt:  m.OccurredAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindEntrada = "entrada" // stock que entra
	MovementKindSalida  = "salida"  // stock que sale
)

// ValidMovementKind indica si kind es uno de los dos tipos reconocidos.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindEntrada || kind == MovementKindSalida
}

// Movement es un registro inmutable de un movimiento de stock confirmado.
// Nunca se actualiza ni se borra después del commit: el log es append-only.
// OwnerID es copia desnormalizada del dueño del producto para consultar el
// historial sin join. OccurredAt lo asigna la base de datos al insertar, de
// modo que el orden del log coincide con el orden de commit por producto.
type Movement struct {
	ID         string
	ProductID  string
	OwnerID    string
	Kind       string // entrada | salida
	Amount     int64  // siempre > 0; el signo lo da Kind
	Note       string
	OccurredAt time.Time
}

// SignedAmount devuelve el efecto con signo sobre la cantidad del producto:
// +Amount para entrada, -Amount para salida.
func (m *Movement) SignedAmount() int64 {
	if m.Kind == MovementKindSalida {
		return -m.Amount
	}
	return m.Amount
}

// MovementView movimiento junto con el nombre del producto (para listados).
type MovementView struct {
	Movement
	ProductName string
}

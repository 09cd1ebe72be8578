package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
)

func TestSignedAmount(t *testing.T) {
	entrada := &entity.Movement{Kind: entity.MovementKindEntrada, Amount: 5}
	assert.Equal(t, int64(5), entrada.SignedAmount())

	salida := &entity.Movement{Kind: entity.MovementKindSalida, Amount: 5}
	assert.Equal(t, int64(-5), salida.SignedAmount())
}

func TestValidMovementKind(t *testing.T) {
	assert.True(t, entity.ValidMovementKind(entity.MovementKindEntrada))
	assert.True(t, entity.ValidMovementKind(entity.MovementKindSalida))
	assert.False(t, entity.ValidMovementKind(""))
	assert.False(t, entity.ValidMovementKind("ENTRADA"), "los tipos son case-sensitive")
	assert.False(t, entity.ValidMovementKind("transferencia"))
}

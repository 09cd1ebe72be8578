package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockledger-api/internal/domain"
)

func TestInsufficientStockError_MatcheaSentinelYExponeDisponible(t *testing.T) {
	err := fmt.Errorf("aplicar movimiento: %w", &domain.InsufficientStockError{Available: 5})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"el error tipado debe matchear el sentinel vía errors.Is")

	var insufficient *domain.InsufficientStockError
	assert.True(t, errors.As(err, &insufficient))
	assert.Equal(t, int64(5), insufficient.Available)
	assert.Contains(t, err.Error(), "5 disponible")
}

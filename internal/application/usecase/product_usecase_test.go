package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/application/usecase"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
)

const (
	ownerA = "00000000-0000-0000-0000-00000000000a"
	ownerB = "00000000-0000-0000-0000-00000000000b"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id, ownerID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetForUpdate(id, ownerID string) (*entity.Product, error) {
	return r.GetByID(id, ownerID)
}

func (r *fakeProductRepo) UpdateQuantity(id, ownerID string, quantity int64) error {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	*stored = *p
	return nil
}

func (r *fakeProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.ProductView, error) {
	var out []*entity.ProductView
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, &entity.ProductView{Product: *p})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(ownerID string) ([]*entity.ProductView, error) {
	var out []*entity.ProductView
	for _, p := range r.products {
		if p.OwnerID == ownerID && p.MinQuantity > 0 && p.Quantity <= p.MinQuantity {
			out = append(out, &entity.ProductView{Product: *p})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id, ownerID string) error {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func TestProductCreate_GuardaCantidadInicial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(ownerA, dto.CreateProductRequest{
		Name:        "Teclado",
		Quantity:    10,
		Price:       decimal.NewFromFloat(99.90),
		MinQuantity: 2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(10), out.Quantity)
	assert.True(t, decimal.NewFromFloat(99.90).Equal(out.Price))
	require.Contains(t, repo.products, out.ID)
	assert.Equal(t, ownerA, repo.products[out.ID].OwnerID, "el producto queda ligado al usuario autenticado")
}

func TestProductGetByID_DeOtroUsuario_RetornaNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(ownerB, dto.CreateProductRequest{Name: "Mouse"})
	require.NoError(t, err)

	_, err = uc.GetByID(ownerA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto ajeno debe ser indistinguible de uno inexistente")
}

func TestProductUpdate_NoTocaCantidad(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateProductRequest{Name: "Teclado", Quantity: 7})
	require.NoError(t, err)

	out, err := uc.Update(ownerA, created.ID, dto.UpdateProductRequest{
		Name:        "Teclado mecánico",
		Price:       decimal.NewFromInt(150),
		MinQuantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Teclado mecánico", out.Name)
	assert.Equal(t, int64(7), out.Quantity, "Update de producto jamás muta la cantidad")
	assert.Equal(t, int64(7), repo.products[created.ID].Quantity)
}

func TestProductListLowStock_SoloBajoUmbral(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(ownerA, dto.CreateProductRequest{Name: "Crítico", Quantity: 1, MinQuantity: 5})
	require.NoError(t, err)
	_, err = uc.Create(ownerA, dto.CreateProductRequest{Name: "Sano", Quantity: 50, MinQuantity: 5})
	require.NoError(t, err)
	_, err = uc.Create(ownerA, dto.CreateProductRequest{Name: "SinUmbral", Quantity: 0, MinQuantity: 0})
	require.NoError(t, err)

	out, err := uc.ListLowStock(ownerA)
	require.NoError(t, err)
	require.Len(t, out, 1, "solo productos con umbral configurado y stock en o bajo el umbral")
	assert.Equal(t, "Crítico", out[0].Name)
}

func TestProductDelete_DeOtroUsuario_RetornaNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(ownerB, dto.CreateProductRequest{Name: "Mouse"})
	require.NoError(t, err)

	err = uc.Delete(ownerA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, repo.products, created.ID, "el producto ajeno no debe borrarse")
}

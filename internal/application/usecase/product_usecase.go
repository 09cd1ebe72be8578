package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos scoped por owner. No toca Quantity en
// Update: la cantidad se muta solo vía el ledger de movimientos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create persiste un producto nuevo con su cantidad inicial.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del owner. Devuelve ErrNotFound si no existe o es de otro usuario.
func (uc *ProductUseCase) GetByID(ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos del producto, sin Quantity.
func (uc *ProductUseCase) Update(ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.MinQuantity = in.MinQuantity
	product.MaxQuantity = in.MaxQuantity
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del owner con nombres de categoría y proveedor.
func (uc *ProductUseCase) List(ownerID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.ListByOwner(ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductViewResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListLowStock productos en o por debajo de su umbral mínimo (alerta, no bloqueo).
func (uc *ProductUseCase) ListLowStock(ownerID string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductViewResponse(p))
	}
	return items, nil
}

// Delete elimina un producto del owner.
func (uc *ProductUseCase) Delete(ownerID, id string) error {
	return uc.productRepo.Delete(id, ownerID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductViewResponse(p *entity.ProductView) *dto.ProductResponse {
	out := toProductResponse(&p.Product)
	out.CategoryName = p.CategoryName
	out.SupplierName = p.SupplierName
	return out
}

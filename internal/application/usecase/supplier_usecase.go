package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores scoped por owner.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

func (uc *SupplierUseCase) Create(ownerID string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

func (uc *SupplierUseCase) List(ownerID string) ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

func (uc *SupplierUseCase) Update(ownerID, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.CNPJ = in.CNPJ
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

func (uc *SupplierUseCase) Delete(ownerID, id string) error {
	return uc.supplierRepo.Delete(id, ownerID)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:    s.ID,
		Name:  s.Name,
		CNPJ:  s.CNPJ,
		Email: s.Email,
		Phone: s.Phone,
	}
}

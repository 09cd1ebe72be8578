package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías scoped por owner.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *CategoryUseCase) Create(ownerID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (uc *CategoryUseCase) List(ownerID string) ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

func (uc *CategoryUseCase) Update(ownerID, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (uc *CategoryUseCase) Delete(ownerID, id string) error {
	return uc.categoryRepo.Delete(id, ownerID)
}

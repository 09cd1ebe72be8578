package usecase

import (
	"time"

	"github.com/tu-usuario/stockledger-api/internal/application/auth"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

// UserAdminUseCase gestión de usuarios por un administrador.
type UserAdminUseCase struct {
	userRepo repository.UserRepository
}

// NewUserAdminUseCase construye el caso de uso.
func NewUserAdminUseCase(userRepo repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{userRepo: userRepo}
}

// List devuelve todos los usuarios registrados.
func (uc *UserAdminUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Update actualiza los datos y el rol de un usuario.
func (uc *UserAdminUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.Email = in.Email
	user.CPF = in.CPF
	user.Phone = in.Phone
	user.Role = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserAdminUseCase) Delete(id string) error {
	return uc.userRepo.Delete(id)
}

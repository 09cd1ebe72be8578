package dto

// UpdateUserRequest entrada para que un admin actualice un usuario.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Phone string `json:"phone" validate:"required,brphone"`
	Role  string `json:"role" validate:"required,oneof=admin user"`
}

// UserListResponse lista de usuarios (admin).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

package dto

// SupplierRequest entrada para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	CNPJ  string `json:"cnpj" validate:"required,min=1,max=20"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

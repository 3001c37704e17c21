package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	NIT           string `json:"nit" validate:"required"`
	Category      string `json:"category"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Rating        int    `json:"rating" validate:"min=0,max=5"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (parcial).
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string `json:"category"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Rating        *int    `json:"rating" validate:"omitempty,min=0,max=5"`
	Status        *string `json:"status"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	NIT           string    `json:"nit"`
	Category      string    `json:"category"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Rating        int       `json:"rating"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

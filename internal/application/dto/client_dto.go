package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

// UpdateClientRequest entrada para actualizar un cliente (parcial).
type UpdateClientRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Notes         *string `json:"notes"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateInteractionRequest entrada para registrar una interacción.
type CreateInteractionRequest struct {
	Date    *time.Time `json:"date"`
	Channel string     `json:"channel" validate:"required"`
	Summary string     `json:"summary" validate:"required"`
}

// InteractionResponse salida de una interacción.
type InteractionResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Date      time.Time `json:"date"`
	Channel   string    `json:"channel"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

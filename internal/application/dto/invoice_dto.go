package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineRequest línea de factura en creación. El total de línea se calcula en el servidor.
type InvoiceLineRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`   // > 0
	UnitPrice   decimal.Decimal `json:"unit_price"` // >= 0
}

// CreateInvoiceRequest entrada para crear una factura (estado inicial Draft).
type CreateInvoiceRequest struct {
	ClientID  string               `json:"client_id" validate:"required"`
	ProjectID string               `json:"project_id"`
	IssueDate *time.Time           `json:"issue_date"`
	DueDate   *time.Time           `json:"due_date"`
	Lines     []InvoiceLineRequest `json:"lines" validate:"required,min=1"`
}

// InvoiceLineResponse línea de factura en respuestas.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID        string                `json:"id"`
	CompanyID string                `json:"company_id"`
	Number    string                `json:"number"`
	ClientID  string                `json:"client_id"`
	ProjectID string                `json:"project_id,omitempty"`
	IssueDate time.Time             `json:"issue_date"`
	DueDate   time.Time             `json:"due_date"`
	Lines     []InvoiceLineResponse `json:"lines"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Tax       decimal.Decimal       `json:"tax"`
	Total     decimal.Decimal       `json:"total"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

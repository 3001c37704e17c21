package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para crear una transacción financiera.
type CreateTransactionRequest struct {
	ProjectID   string          `json:"project_id"`
	Type        string          `json:"type" validate:"required"` // Income | Expense
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"` // > 0
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
}

// UpdateTransactionRequest entrada para actualizar una transacción (parcial; sin Type ni Amount
// una vez creada la contabilidad se corrige con una transacción inversa).
type UpdateTransactionRequest struct {
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ProjectID   string          `json:"project_id,omitempty"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	InvoiceID   string          `json:"invoice_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// FinancialSummaryDTO totales de ingresos/gastos (global o por proyecto).
type FinancialSummaryDTO struct {
	ProjectID string          `json:"project_id,omitempty"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Net       decimal.Decimal `json:"net"`
}

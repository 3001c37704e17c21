package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionIncome  = "Income"
	TransactionExpense = "Expense"
)

// Transaction movimiento financiero asociado (opcionalmente) a un proyecto.
// InvoiceID enlaza el ingreso generado al marcar una factura como pagada.
type Transaction struct {
	ID          string
	CompanyID   string
	ProjectID   string // opcional
	Type        string // Income | Expense
	Category    string // materiales, nómina, anticipo, venta…
	Amount      decimal.Decimal // > 0
	Date        time.Time
	Description string
	InvoiceID   string // opcional
	CreatedBy   string // user ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

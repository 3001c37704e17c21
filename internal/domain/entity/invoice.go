package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Paid es terminal.
const (
	InvoiceStatusDraft   = "Draft"
	InvoiceStatusSent    = "Sent"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

// IVA general aplicado a las facturas (19%).
var InvoiceTaxRate = decimal.NewFromFloat(0.19)

// Invoice factura de venta a un cliente, opcionalmente asociada a un proyecto.
// Subtotal, Tax y Total se calculan en el servidor a partir de las líneas.
type Invoice struct {
	ID        string
	CompanyID string
	Number    string // FAC-<consecutivo>, único por empresa
	ClientID  string
	ProjectID string // opcional
	IssueDate time.Time
	DueDate   time.Time
	Lines     []InvoiceLine
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceLine línea de factura. LineTotal = Quantity × UnitPrice.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

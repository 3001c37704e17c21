package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Received y Cancelled son terminales.
const (
	PurchaseOrderPending   = "Pending"
	PurchaseOrderApproved  = "Approved"
	PurchaseOrderReceived  = "Received"
	PurchaseOrderCancelled = "Cancelled"
)

// PurchaseOrder orden de compra a un proveedor. Recibirla (Approved -> Received)
// incrementa el stock de cada línea de forma transaccional.
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	OrderNumber string // OC-<consecutivo>, único por empresa
	SupplierID  string
	Status      string
	Notes       string
	CreatedBy   string // user ID
	Lines       []PurchaseOrderLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PurchaseOrderLine línea de una orden de compra.
type PurchaseOrderLine struct {
	ID       string
	OrderID  string
	ItemID   string
	Quantity decimal.Decimal // > 0
	UnitCost decimal.Decimal
}

// Total devuelve el valor total de la orden (suma de cantidad × costo por línea).
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Quantity.Mul(l.UnitCost))
	}
	return total
}

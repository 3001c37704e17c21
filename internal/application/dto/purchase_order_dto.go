package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderLineRequest línea de una orden de compra en creación.
type PurchaseOrderLineRequest struct {
	ItemID   string          `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"` // > 0
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" validate:"required"`
	Notes      string                     `json:"notes"`
	Lines      []PurchaseOrderLineRequest `json:"lines" validate:"required,min=1"`
}

// CancelPurchaseOrderRequest motivo opcional de la cancelación.
type CancelPurchaseOrderRequest struct {
	Reason string `json:"reason"`
}

// PurchaseOrderLineResponse línea de una orden en respuestas.
type PurchaseOrderLineResponse struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID          string                      `json:"id"`
	CompanyID   string                      `json:"company_id"`
	OrderNumber string                      `json:"order_number"`
	SupplierID  string                      `json:"supplier_id"`
	Status      string                      `json:"status"`
	Notes       string                      `json:"notes,omitempty"`
	CreatedBy   string                      `json:"created_by"`
	Lines       []PurchaseOrderLineResponse `json:"lines"`
	Total       decimal.Decimal             `json:"total"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

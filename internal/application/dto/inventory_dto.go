package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para crear un item. Status no se acepta: es derivado.
type CreateInventoryItemRequest struct {
	SKU      string          `json:"sku" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Unit     string          `json:"unit" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"` // cantidad inicial, >= 0
	UnitCost decimal.Decimal `json:"unit_cost"`
	Location string          `json:"location"`
}

// UpdateInventoryItemRequest entrada para actualizar un item (parcial; sin Quantity ni Status:
// la cantidad se modifica solo vía solicitudes de material y órdenes de compra).
type UpdateInventoryItemRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Unit     *string          `json:"unit"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
	Location *string          `json:"location"`
}

// InventoryItemResponse salida de un item de inventario.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Location  string          `json:"location"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InventoryItemListResponse lista paginada de items.
type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

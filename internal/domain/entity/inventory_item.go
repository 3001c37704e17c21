package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem material o insumo en bodega. Quantity nunca es negativa;
// Status es derivado de Quantity (ver domain/inventory) y no se acepta como entrada.
type InventoryItem struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	Category  string // cemento, acero, eléctrico, PVC…
	Unit      string // un, kg, m3, ml…
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Location  string // bodega o frente de obra
	Status    string // derivado: In Stock | Low Stock | Out of Stock
	CreatedAt time.Time
	UpdatedAt time.Time
}

package inventory

import "github.com/shopspring/decimal"

// Estados derivados del stock. El estado nunca se acepta como entrada:
// se recalcula con DeriveStatus en cada escritura de cantidad.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Umbrales fijos de la regla de derivación.
var (
	lowStockThreshold = decimal.NewFromInt(10) // <= 10 es stock bajo
)

// DeriveStatus calcula el estado de un item a partir de su cantidad:
// > 10 In Stock, 1..10 Low Stock, <= 0 Out of Stock.
func DeriveStatus(quantity decimal.Decimal) string {
	switch {
	case quantity.GreaterThan(lowStockThreshold):
		return StatusInStock
	case quantity.GreaterThan(decimal.Zero):
		return StatusLowStock
	default:
		return StatusOutOfStock
	}
}

// CanConsume indica si se puede descontar quantity unidades de available
// sin dejar el stock en negativo. Invariante central del módulo de inventario.
func CanConsume(available, quantity decimal.Decimal) bool {
	return quantity.GreaterThan(decimal.Zero) && !available.LessThan(quantity)
}

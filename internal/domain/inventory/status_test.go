package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/construtek/obras-api/internal/domain/inventory"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		want     string
	}{
		{"negativo defensivo", "-1", inventory.StatusOutOfStock},
		{"cero", "0", inventory.StatusOutOfStock},
		{"fracción baja", "0.5", inventory.StatusLowStock},
		{"límite inferior bajo", "1", inventory.StatusLowStock},
		{"límite superior bajo", "10", inventory.StatusLowStock},
		{"justo encima del umbral", "10.01", inventory.StatusInStock},
		{"once", "11", inventory.StatusInStock},
		{"grande", "5000", inventory.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := decimal.RequireFromString(tc.quantity)
			assert.Equal(t, tc.want, inventory.DeriveStatus(q))
		})
	}
}

func TestCanConsume(t *testing.T) {
	ten := decimal.NewFromInt(10)

	assert.True(t, inventory.CanConsume(ten, decimal.NewFromInt(10)), "consumir todo el stock es válido")
	assert.True(t, inventory.CanConsume(ten, decimal.NewFromInt(1)))
	assert.False(t, inventory.CanConsume(ten, decimal.NewFromInt(11)), "no puede dejar stock negativo")
	assert.False(t, inventory.CanConsume(ten, decimal.Zero), "cantidad cero no es un consumo")
	assert.False(t, inventory.CanConsume(ten, decimal.NewFromInt(-3)), "cantidad negativa no es un consumo")
	assert.False(t, inventory.CanConsume(decimal.Zero, decimal.NewFromInt(1)))
}

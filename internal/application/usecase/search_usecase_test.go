package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cemento", "cemento"},
		{"ALMACÉN", "almacen"},
		{"  Eléctrico  ", "electrico"},
		{"Señalización", "senalizacion"},
		{"obra-2024", "obra-2024"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTerm(tc.in), "entrada: %q", tc.in)
	}
}

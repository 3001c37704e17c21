package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name string
		term string
		want string
	}{
		{"sin metacaracteres", "cemento", "cemento"},
		{"porcentaje", "descuento 20%", `descuento 20\%`},
		{"guion bajo", "obra_norte", `obra\_norte`},
		{"barra invertida", `c\obras`, `c\\obras`},
		{"combinado", `a%b_c\d`, `a\%b\_c\\d`},
		{"vacio", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.term), "el término debe compararse literal")
		})
	}
}

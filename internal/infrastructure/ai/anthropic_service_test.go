package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"json puro",
			`{"risk_level":"low","summary":"ok"}`,
			`{"risk_level":"low","summary":"ok"}`,
		},
		{
			"bloque markdown json",
			"```json\n{\"risk_level\":\"high\"}\n```",
			`{"risk_level":"high"}`,
		},
		{
			"bloque markdown sin lenguaje",
			"```\n{\"a\":1}\n```",
			`{"a":1}`,
		},
		{
			"texto alrededor",
			"Aquí está el análisis: {\"risk_level\":\"medium\"} espero que sirva",
			`{"risk_level":"medium"}`,
		},
		{
			"sin json",
			"no hay nada estructurado aquí",
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestNormalizeSeverity(t *testing.T) {
	assert.Equal(t, "high", normalizeSeverity(" HIGH "))
	assert.Equal(t, "low", normalizeSeverity("low"))
	assert.Equal(t, "medium", normalizeSeverity("crítico")) // valores fuera de rango caen a medium
	assert.Equal(t, "medium", normalizeSeverity(""))
}

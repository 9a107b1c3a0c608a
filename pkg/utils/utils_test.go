package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "inteiro", raw: "42", want: ptr(42)},
		{name: "decimal com ponto", raw: " 12.5 ", want: ptr(12.5)},
		{name: "vazio", raw: "  "},
		{name: "texto", raw: "abc"},
		{name: "nan", raw: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.raw))
		})
	}
}

func TestParseLocaleNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "vírgula decimal", raw: "0,75", want: ptr(0.75)},
		{name: "milhar e decimal", raw: "1.234,56", want: ptr(1234.56)},
		{name: "inteiro", raw: "3", want: ptr(3)},
		{name: "vazio", raw: ""},
		{name: "inválido", raw: "n/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocaleNumber(tt.raw))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.675))
	assert.Equal(t, 17.5, RoundWithTwoDecimalPlace(17.5))
	assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
}

func TestIsMonthWithin(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month time.Time
		want  bool
	}{
		{name: "mês corrente", month: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "mês passado", month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "mês futuro", month: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{name: "antes do ano mínimo", month: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMonthWithin(tt.month, 2024, now))
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestHashBytes(t *testing.T) {
	assert.Equal(t, HashBytes([]byte("planilha")), HashBytes([]byte("planilha")))
	assert.NotEqual(t, HashBytes([]byte("planilha")), HashBytes([]byte("planilha2")))
	assert.Len(t, HashBytes(nil), 64)
}

func ptr(v float64) *float64 {
	return &v
}

package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda para duas casas (meio para cima, como no Excel)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// ParseNumber converte o valor bruto de uma célula em número.
// Valores vazios ou inválidos retornam nil, nunca erro.
func ParseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// ParseLocaleNumber converte números no formato brasileiro ("1.234,56").
// O ponto é tratado como separador de milhar e a vírgula como decimal.
func ParseLocaleNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	v := d.InexactFloat64()
	return &v
}

// FormatNumber formata o número sem casas decimais quando ele é inteiro
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

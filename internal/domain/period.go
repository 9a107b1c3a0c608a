package domain

import (
	"regexp"
	"time"
)

// MonthLayout é o formato das colunas de mês (MM/YYYY)
const MonthLayout = "01/2006"

var monthPattern = regexp.MustCompile(`(\d{2}/\d{4})`)

// ParseMonth converte um rótulo MM/YYYY em data (primeiro dia do mês).
// Rótulos inválidos retornam nil, sem erro.
func ParseMonth(label string) *time.Time {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		return nil
	}
	return &t
}

// ExtractMonth procura um rótulo MM/YYYY dentro de um cabeçalho de coluna
func ExtractMonth(header string) (string, bool) {
	match := monthPattern.FindString(header)
	if match == "" {
		return "", false
	}
	return match, true
}

// IsMonthColumn indica se o cabeçalho contém um mês MM/YYYY
func IsMonthColumn(header string) bool {
	return monthPattern.MatchString(header)
}

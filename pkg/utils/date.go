package utils

import "time"

// FirstDayOfMonth retorna o primeiro dia do mês da data informada
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// IsMonthWithin indica se o mês está entre o ano mínimo e o mês corrente (inclusive)
func IsMonthWithin(month time.Time, minYear int, now time.Time) bool {
	if month.Year() < minYear {
		return false
	}

	current := FirstDayOfMonth(now)
	return !time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, current.Location()).After(current)
}

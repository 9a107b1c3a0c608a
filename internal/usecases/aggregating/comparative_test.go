package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/transforming"
)

func findSummary(summaries []domain.ComparativeSummary, uf, month string) *domain.ComparativeSummary {
	for i := range summaries {
		if summaries[i].UF == uf && summaries[i].Month == month {
			return &summaries[i]
		}
	}
	return nil
}

// SP com 20 cotações e RJ com 80: BR soma 100 e fica Aceitável
func TestAggregate_NationalScenario(t *testing.T) {
	wide := &domain.WideTable{
		Months: []string{"01/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"20"}},
			{UF: "RJ", Code: "1101001", Description: "Arroz", Values: []string{"80"}},
		},
	}

	long := transforming.ToLongForm(wide, domain.NewReferenceSet(nil), domain.NewReferenceSet(nil))
	summaries := Aggregate(long.Rows)

	require.Len(t, summaries, 3)

	br := findSummary(summaries, "BR", "01/2024")
	require.NotNil(t, br)
	assert.Equal(t, 1, br.Acceptable)
	assert.Equal(t, 1, br.Total)

	rj := findSummary(summaries, "RJ", "01/2024")
	require.NotNil(t, rj)
	assert.Equal(t, 1, rj.Acceptable)

	sp := findSummary(summaries, "SP", "01/2024")
	require.NotNil(t, sp)
	assert.Equal(t, 1, sp.SuperCritical)
	assert.Equal(t, 0, sp.Critical)
}

func TestAggregate_ExceptionsAndServices(t *testing.T) {
	value := 10.0
	rows := []domain.LongFormRow{
		{UF: "SP", Month: "01/2024", Value: &value, Exception: true},
		{UF: "SP", Month: "01/2024", Value: &value, Service: true},
		{UF: "SP", Month: "01/2024", Value: &value, Exception: true, Service: true},
		{UF: "SP", Month: "01/2024", Value: &value},
		{UF: "SP", Month: "01/2024", Value: nil},
	}

	summaries := Aggregate(rows)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Exception)
	assert.Equal(t, 2, s.Services)
	assert.Equal(t, 1, s.SuperCritical)
	assert.Equal(t, 0, s.Critical+s.Acceptable+s.Sufficient)
}

func TestAggregate_EmptyCellsAreNotCounted(t *testing.T) {
	wide := &domain.WideTable{
		Months: []string{"01/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"20"}},
			{UF: "SP", Code: "1101002", Description: "Feijão", Values: []string{""}},
			{UF: "SP", Code: "6101001", Description: "Corte de cabelo", Values: []string{"n/d"}},
		},
	}

	long := transforming.ToLongForm(wide, domain.NewReferenceSet(nil), domain.NewReferenceSet([]string{"Corte de cabelo"}))
	summaries := Aggregate(long.Rows)

	sp := findSummary(summaries, "SP", "01/2024")
	require.NotNil(t, sp)
	assert.Equal(t, 1, sp.Total)
	assert.Equal(t, 1, sp.SuperCritical)
	assert.Equal(t, 0, sp.Services)
	assert.Equal(t, 0, sp.Exception)
}

func TestSortSummaries(t *testing.T) {
	summaries := []domain.ComparativeSummary{
		{UF: "SP", Month: "13/2024", MonthDate: domain.ParseMonth("13/2024")},
		{UF: "SP", Month: "02/2024", MonthDate: domain.ParseMonth("02/2024")},
		{UF: "RJ", Month: "13/2024", MonthDate: domain.ParseMonth("13/2024")},
		{UF: "AM", Month: "01/2024", MonthDate: domain.ParseMonth("01/2024")},
	}

	SortSummaries(summaries)

	got := make([]string, 0, len(summaries))
	for _, s := range summaries {
		got = append(got, s.UF+" "+s.Month)
	}
	assert.Equal(t, []string{"AM 01/2024", "SP 02/2024", "RJ 13/2024", "SP 13/2024"}, got)
	assert.Nil(t, summaries[2].MonthDate)
}

func TestAggregate_Idempotent(t *testing.T) {
	v1, v2 := 30.0, 120.0
	rows := []domain.LongFormRow{
		{UF: "RJ", Month: "02/2024", Value: &v1},
		{UF: "SP", Month: "01/2024", Value: &v2},
		{UF: "SP", Month: "xx/2024", Value: &v1},
	}

	first := Aggregate(rows)
	second := Aggregate(rows)
	assert.Equal(t, first, second)

	// meses inválidos ficam por último
	require.Len(t, first, 3)
	assert.Equal(t, "01/2024", first[0].Month)
	assert.Equal(t, "02/2024", first[1].Month)
	assert.Nil(t, first[2].MonthDate)
}

func TestMostRecent(t *testing.T) {
	v := 50.0
	rows := []domain.LongFormRow{
		{UF: "SP", Month: "01/2024", Value: &v},
		{UF: "SP", Month: "03/2024", Value: &v},
		{UF: "RJ", Month: "03/2024", Value: &v},
		{UF: "RJ", Month: "invalido", Value: &v},
	}

	view := MostRecent(Aggregate(rows))

	assert.Equal(t, "03/2024", view.Month)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "RJ", view.Rows[0].UF)
	assert.Equal(t, "SP", view.Rows[1].UF)
}

func TestMostRecent_OnlyInvalidMonths(t *testing.T) {
	view := MostRecent([]domain.ComparativeSummary{{UF: "SP", Month: "abc"}})

	assert.Empty(t, view.Month)
	assert.Empty(t, view.Rows)
}

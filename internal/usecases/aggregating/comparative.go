// Package aggregating calcula a visão comparativa e as estatísticas das quantidades de cotações
package aggregating

import (
	"sort"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

type summaryKey struct {
	uf    string
	month string
}

// Aggregate conta, por UF e mês, o total de itens, os itens de cada faixa de
// criticidade, as exceções e os serviços.
//
// Células vazias ou inválidas não entram em nenhuma contagem. O total inclui
// exceções e serviços. As quatro faixas numéricas consideram apenas itens que não
// são exceção nem serviço. Exceções e serviços são contados de forma independente,
// um item marcado nas duas listas entra nas duas contagens.
func Aggregate(rows []domain.LongFormRow) []domain.ComparativeSummary {
	byKey := make(map[summaryKey]*domain.ComparativeSummary)
	order := make([]summaryKey, 0)

	for _, row := range rows {
		key := summaryKey{uf: row.UF, month: row.Month}
		summary, ok := byKey[key]
		if !ok {
			summary = &domain.ComparativeSummary{
				UF:        row.UF,
				Month:     row.Month,
				MonthDate: domain.ParseMonth(row.Month),
			}
			byKey[key] = summary
			order = append(order, key)
		}

		if row.Value == nil {
			continue
		}

		summary.Total++
		if row.Exception {
			summary.Exception++
		}
		if row.Service {
			summary.Services++
		}
		if row.Exception || row.Service {
			continue
		}

		tier, ok := domain.Classify(row.Value)
		if !ok {
			continue
		}
		switch tier {
		case domain.TierSuperCritical:
			summary.SuperCritical++
		case domain.TierCritical:
			summary.Critical++
		case domain.TierAcceptable:
			summary.Acceptable++
		case domain.TierSufficient:
			summary.Sufficient++
		}
	}

	result := make([]domain.ComparativeSummary, 0, len(order))
	for _, key := range order {
		result = append(result, *byKey[key])
	}

	SortSummaries(result)
	return result
}

// SortSummaries ordena por data do mês (meses inválidos por último) e depois por UF
func SortSummaries(summaries []domain.ComparativeSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch {
		case a.MonthDate == nil && b.MonthDate != nil:
			return false
		case a.MonthDate != nil && b.MonthDate == nil:
			return true
		case a.MonthDate != nil && b.MonthDate != nil && !a.MonthDate.Equal(*b.MonthDate):
			return a.MonthDate.Before(*b.MonthDate)
		case a.MonthDate == nil && b.MonthDate == nil && a.Month != b.Month:
			return a.Month < b.Month
		}
		return a.UF < b.UF
	})
}

// MostRecent retorna as linhas do mês mais recente. Meses que não puderam ser
// interpretados nunca são escolhidos.
func MostRecent(summaries []domain.ComparativeSummary) domain.StatusView {
	var latest *domain.ComparativeSummary
	for i := range summaries {
		s := &summaries[i]
		if s.MonthDate == nil {
			continue
		}
		if latest == nil || s.MonthDate.After(*latest.MonthDate) {
			latest = s
		}
	}

	view := domain.StatusView{Rows: []domain.ComparativeSummary{}}
	if latest == nil {
		return view
	}

	view.Month = latest.Month
	for _, s := range summaries {
		if s.MonthDate != nil && s.MonthDate.Equal(*latest.MonthDate) {
			view.Rows = append(view.Rows, s)
		}
	}
	return view
}

package consolidating

import (
	"sort"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// BuildConsolidatedView monta a tabela consolidada do mês de referência:
//  1. filtra as tabelas de quantidade e de ponderação (UF, item, grupo e criticidade);
//  2. monta os pivots do mês e faz a junção pelo código;
//  3. calcula criticidade (Exceção quando marcado), prioridade, severidade e falta
//     para a cobertura mínima;
//  4. aplica o filtro de prioridade e ordena por severidade e ponderação decrescentes.
func BuildConsolidatedView(
	quantities *domain.QuantityTable,
	weights *domain.WeightTable,
	referenceMonth string,
	filters domain.ConsolidatedFilters,
	exceptionMap, serviceMap map[string]bool,
) (*domain.ConsolidatedView, error) {
	view := &domain.ConsolidatedView{ReferenceMonth: referenceMonth, Rows: []domain.ConsolidatedRow{}}

	quantityPivot, err := BuildQuantityCrossTab(FilterQuantities(quantities, filters, referenceMonth), referenceMonth)
	if err != nil {
		return nil, err
	}
	weightPivot, err := BuildWeightCrossTab(FilterWeights(weights, filters), referenceMonth)
	if err != nil {
		return nil, err
	}

	if quantityPivot.IsEmpty() || weightPivot.IsEmpty() {
		return view, nil
	}

	joined, region, err := Join(quantityPivot, weightPivot)
	if err != nil {
		return nil, err
	}
	view.Region = region

	priorities := toPrioritySet(filters.Priorities)
	for _, j := range joined {
		row := buildRow(j, region, exceptionMap[j.QuantityKey], serviceMap[j.QuantityKey])
		if len(priorities) > 0 {
			if _, ok := priorities[row.Priority]; !ok {
				continue
			}
		}
		view.Rows = append(view.Rows, row)
	}

	SortConsolidatedRows(view.Rows)
	return view, nil
}

func buildRow(j JoinedRow, region string, exception, service bool) domain.ConsolidatedRow {
	row := domain.ConsolidatedRow{
		CompositeKey: j.QuantityKey,
		Code:         j.Code,
		Region:       region,
		Quantity:     j.Quantity,
		Weight:       j.Weight,
		Exception:    exception,
		Service:      service,
	}

	if exception {
		row.Criticality = domain.TierException
	} else if tier, ok := domain.Classify(j.Quantity.Ptr()); ok {
		row.Criticality = tier
	}

	if rank, ok := domain.SeverityRank(row.Criticality); ok {
		row.Severity = &rank
	}

	if priority, ok := domain.ClassifyPriority(j.Weight.Ptr()); ok {
		row.Priority = priority
	}

	if shortfall, ok := domain.Shortfall(j.Quantity.Ptr()); ok {
		row.Shortfall = &shortfall
	}

	return row
}

// SortConsolidatedRows ordena por severidade decrescente e depois por ponderação
// decrescente. Linhas sem severidade ou sem ponderação ficam por último e o
// desempate é pela chave composta.
func SortConsolidatedRows(rows []domain.ConsolidatedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		if (a.Severity == nil) != (b.Severity == nil) {
			return a.Severity != nil
		}
		if a.Severity != nil && *a.Severity != *b.Severity {
			return *a.Severity > *b.Severity
		}

		if a.Weight.HasData != b.Weight.HasData {
			return a.Weight.HasData
		}
		if a.Weight.HasData && a.Weight.Value != b.Weight.Value {
			return a.Weight.Value > b.Weight.Value
		}

		return a.CompositeKey < b.CompositeKey
	})
}

// FilterQuantities aplica os filtros de UF, item, grupo e criticidade na tabela de
// quantidades. Na criticidade, exceções e serviços só passam quando "Exceção" ou
// "Serviços" estão selecionados; os demais itens passam quando o valor do mês de
// referência pertence a uma das faixas selecionadas.
func FilterQuantities(table *domain.QuantityTable, filters domain.ConsolidatedFilters, referenceMonth string) *domain.QuantityTable {
	if table == nil {
		return nil
	}

	regions := toSet(filters.Regions)
	items := toSet(filters.Items)
	groups := toSet(filters.Groups)
	tiers := make(map[domain.Tier]struct{}, len(filters.Criticalities))
	for _, t := range filters.Criticalities {
		tiers[t] = struct{}{}
	}
	idx := indexOf(table.Months, referenceMonth)

	rows := make([]domain.QuantityRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		if !contains(regions, row.UF) || !contains(items, row.CompositeKey) || !contains(groups, row.Group) {
			continue
		}
		if len(tiers) > 0 && !matchesCriticality(row, tiers, idx) {
			continue
		}
		rows = append(rows, row)
	}

	return &domain.QuantityTable{Months: table.Months, Rows: rows}
}

func matchesCriticality(row domain.QuantityRow, tiers map[domain.Tier]struct{}, idx int) bool {
	if _, ok := tiers[domain.TierException]; ok && row.Exception {
		return true
	}
	if _, ok := tiers[domain.TierService]; ok && row.Service {
		return true
	}
	if row.Exception || row.Service || idx < 0 {
		return false
	}

	tier, ok := domain.Classify(utils.ParseNumber(row.Value(idx)))
	if !ok {
		return false
	}
	_, selected := tiers[tier]
	return selected
}

// FilterWeights aplica os filtros de UF, item e grupo na tabela de ponderações
func FilterWeights(table *domain.WeightTable, filters domain.ConsolidatedFilters) *domain.WeightTable {
	if table == nil {
		return nil
	}

	regions := toSet(filters.Regions)
	items := toSet(filters.Items)
	groups := toSet(filters.Groups)

	records := make([]domain.WeightRecord, 0, len(table.Records))
	for _, record := range table.Records {
		if !contains(regions, record.UF) || !contains(items, record.CompositeKey) || !contains(groups, record.Group) {
			continue
		}
		records = append(records, record)
	}

	return &domain.WeightTable{Months: table.Months, Records: records}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func toPrioritySet(values []domain.Priority) map[domain.Priority]struct{} {
	set := make(map[domain.Priority]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// contains considera o filtro vazio como "todos"
func contains(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

package consolidating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/transforming"
)

const month = "02/2024"

func ptr(v float64) *float64 { return &v }

func quantityTable(exceptions, services []string) *domain.QuantityTable {
	wide := &domain.WideTable{
		Months: []string{"01/2024", month},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"10", "20"}},
			{UF: "SP", Code: "1101002", Description: "Feijão", Values: []string{"60", "70"}},
			{UF: "SP", Code: "1201001", Description: "Carne", Values: []string{"150", "150"}},
			{UF: "SP", Code: "5101001", Description: "Corte de cabelo", Values: []string{"5", "5"}},
			{UF: "SP", Code: "9999999", Description: "Sem ponderação", Values: []string{"1", "1"}},
			{UF: "RJ", Code: "1101001", Description: "Arroz", Values: []string{"80", "80"}},
		},
	}
	return transforming.PrepareQuantityTable(wide, domain.NewReferenceSet(exceptions), domain.NewReferenceSet(services))
}

func weightTable() *domain.WeightTable {
	return &domain.WeightTable{
		Months: []string{"01/2024", month},
		Records: []domain.WeightRecord{
			{UF: "SP", CompositeKey: "1101001 - Arroz", Group: "1101", Values: []*float64{ptr(0.3), ptr(0.4)}},
			{UF: "SP", CompositeKey: "1101002 - Feijão", Group: "1101", Values: []*float64{ptr(1.0), ptr(1.0)}},
			{UF: "SP", CompositeKey: "1201001 - Carne", Group: "1201", Values: []*float64{ptr(2.0), ptr(2.5)}},
			{UF: "SP", CompositeKey: "5101001 - Corte de cabelo", Group: "5101", Values: []*float64{ptr(0.5), ptr(0.5)}},
			{UF: "RJ", CompositeKey: "1101001 - Arroz", Group: "1101", Values: []*float64{ptr(0.9), ptr(0.9)}},
			{UF: "BR", CompositeKey: "1101001 - Arroz", Group: "1101", Values: []*float64{ptr(9), ptr(9)}},
		},
	}
}

func rowByKey(rows []domain.ConsolidatedRow, key string) *domain.ConsolidatedRow {
	for i := range rows {
		if rows[i].CompositeKey == key {
			return &rows[i]
		}
	}
	return nil
}

func TestBuildConsolidatedView(t *testing.T) {
	quantities := quantityTable([]string{"Corte de cabelo"}, nil)
	exceptionMap, serviceMap := transforming.FlagMaps(quantities)

	view, err := BuildConsolidatedView(quantities, weightTable(), month,
		domain.ConsolidatedFilters{Regions: []string{"SP"}}, exceptionMap, serviceMap)
	require.NoError(t, err)

	assert.Equal(t, "SP", view.Region)
	assert.Equal(t, month, view.ReferenceMonth)

	t.Run("item sem ponderação é descartado na junção", func(t *testing.T) {
		assert.Nil(t, rowByKey(view.Rows, "9999999 - Sem ponderação"))
		assert.Len(t, view.Rows, 4)
	})

	t.Run("criticidade, prioridade e falta", func(t *testing.T) {
		arroz := rowByKey(view.Rows, "1101001 - Arroz")
		require.NotNil(t, arroz)
		assert.Equal(t, domain.TierSuperCritical, arroz.Criticality)
		assert.Equal(t, domain.Priority3, arroz.Priority) // 0,4 exato
		require.NotNil(t, arroz.Shortfall)
		assert.Equal(t, 80.0, *arroz.Shortfall)

		feijao := rowByKey(view.Rows, "1101002 - Feijão")
		require.NotNil(t, feijao)
		assert.Equal(t, domain.TierAcceptable, feijao.Criticality)
		assert.Equal(t, domain.Priority2, feijao.Priority) // 1,0 exato

		carne := rowByKey(view.Rows, "1201001 - Carne")
		require.NotNil(t, carne)
		assert.Equal(t, domain.Priority1, carne.Priority)
		assert.Equal(t, 0.0, *carne.Shortfall)
	})

	t.Run("exceção tem criticidade forçada", func(t *testing.T) {
		corte := rowByKey(view.Rows, "5101001 - Corte de cabelo")
		require.NotNil(t, corte)
		assert.Equal(t, domain.TierException, corte.Criticality)
		require.NotNil(t, corte.Severity)
		assert.Equal(t, 0, *corte.Severity)
	})

	t.Run("ordenação por severidade decrescente", func(t *testing.T) {
		keys := make([]string, 0, len(view.Rows))
		for _, r := range view.Rows {
			keys = append(keys, r.CompositeKey)
		}
		assert.Equal(t, []string{
			"1101001 - Arroz",
			"1101002 - Feijão",
			"1201001 - Carne",
			"5101001 - Corte de cabelo",
		}, keys)
	})
}

func TestBuildConsolidatedView_Filters(t *testing.T) {
	quantities := quantityTable([]string{"Carne"}, []string{"Corte de cabelo"})
	exceptionMap, serviceMap := transforming.FlagMaps(quantities)

	tests := []struct {
		name     string
		filters  domain.ConsolidatedFilters
		expected []string
	}{
		{
			name:     "filtro de criticidade numérica",
			filters:  domain.ConsolidatedFilters{Regions: []string{"SP"}, Criticalities: []domain.Tier{domain.TierAcceptable}},
			expected: []string{"1101002 - Feijão"},
		},
		{
			name:     "filtro de exceção",
			filters:  domain.ConsolidatedFilters{Regions: []string{"SP"}, Criticalities: []domain.Tier{domain.TierException}},
			expected: []string{"1201001 - Carne"},
		},
		{
			name:     "filtro de serviços",
			filters:  domain.ConsolidatedFilters{Regions: []string{"SP"}, Criticalities: []domain.Tier{domain.TierService}},
			expected: []string{"5101001 - Corte de cabelo"},
		},
		{
			name:     "filtro de grupo",
			filters:  domain.ConsolidatedFilters{Regions: []string{"SP"}, Groups: []string{"1101"}},
			expected: []string{"1101001 - Arroz", "1101002 - Feijão"},
		},
		{
			name:     "filtro de prioridade após a junção",
			filters:  domain.ConsolidatedFilters{Regions: []string{"SP"}, Priorities: []domain.Priority{domain.Priority1}},
			expected: []string{"1201001 - Carne"},
		},
		{
			name:     "filtro de item",
			filters:  domain.ConsolidatedFilters{Regions: []string{"RJ"}, Items: []string{"1101001 - Arroz"}},
			expected: []string{"1101001 - Arroz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := BuildConsolidatedView(quantities, weightTable(), month, tt.filters, exceptionMap, serviceMap)
			require.NoError(t, err)

			keys := make([]string, 0, len(view.Rows))
			for _, r := range view.Rows {
				keys = append(keys, r.CompositeKey)
			}
			assert.ElementsMatch(t, tt.expected, keys)
		})
	}
}

func TestBuildConsolidatedView_StructuralErrors(t *testing.T) {
	quantities := quantityTable(nil, nil)

	tests := []struct {
		name    string
		weights *domain.WeightTable
		month   string
		filters domain.ConsolidatedFilters
		cause   error
	}{
		{
			name:    "mais de uma UF",
			weights: weightTable(),
			month:   month,
			filters: domain.ConsolidatedFilters{},
		},
		{
			name:    "mês de referência inexistente",
			weights: weightTable(),
			month:   "12/2030",
			filters: domain.ConsolidatedFilters{Regions: []string{"SP"}},
			cause:   ErrReferenceMonthNotFound,
		},
		{
			name: "UFs diferentes nos dois lados",
			weights: &domain.WeightTable{
				Months:  []string{month},
				Records: []domain.WeightRecord{{UF: "MG", CompositeKey: "1101001 - Arroz", Values: []*float64{ptr(1)}}},
			},
			month:   month,
			filters: domain.ConsolidatedFilters{Regions: []string{"SP", "MG"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildConsolidatedView(quantities, tt.weights, tt.month, tt.filters, nil, nil)
			require.Error(t, err)
			assert.True(t, IsStructuralError(err))

			var pipelineErr *PipelineError
			require.True(t, errors.As(err, &pipelineErr))
			assert.Equal(t, "PIPE_001", pipelineErr.Code)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestBuildConsolidatedView_EmptyAfterFilter(t *testing.T) {
	view, err := BuildConsolidatedView(quantityTable(nil, nil), weightTable(), month,
		domain.ConsolidatedFilters{Regions: []string{"PE"}}, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, view.Rows)
}

func TestBuildQuantityCrossTab_Duplicate(t *testing.T) {
	table := &domain.QuantityTable{
		Months: []string{month},
		Rows: []domain.QuantityRow{
			{QuotationRecord: domain.QuotationRecord{UF: "SP", Values: []string{"1"}}, CompositeKey: "1 - A"},
			{QuotationRecord: domain.QuotationRecord{UF: "SP", Values: []string{"2"}}, CompositeKey: "1 - A"},
		},
	}

	_, err := BuildQuantityCrossTab(table, month)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestBuildWeightCrossTab_DropsNational(t *testing.T) {
	pivot, err := BuildWeightCrossTab(weightTable(), month)
	require.NoError(t, err)

	assert.Equal(t, []string{"RJ", "SP"}, pivot.Regions)
	assert.False(t, pivot.Cell("1101001 - Arroz", "BR").HasData)
	assert.False(t, pivot.Cell("1201001 - Carne", "RJ").HasData)
}

func TestJoin_ManyToMany(t *testing.T) {
	q := &domain.CrossTab{
		Keys:    []string{"1 - A", "1 - B"},
		Regions: []string{"SP"},
		Cells: map[string]map[string]domain.PivotCell{
			"1 - A": {"SP": domain.CellOf(ptr(1))},
			"1 - B": {"SP": domain.CellOf(ptr(2))},
		},
	}
	w := &domain.CrossTab{
		Keys:    []string{"1 - X", "1 - Y", "2 - Z"},
		Regions: []string{"SP"},
		Cells: map[string]map[string]domain.PivotCell{
			"1 - X": {"SP": domain.CellOf(ptr(0.1))},
			"1 - Y": {"SP": domain.NoData},
			"2 - Z": {"SP": domain.CellOf(ptr(0.3))},
		},
	}

	rows, region, err := Join(q, w)
	require.NoError(t, err)

	assert.Equal(t, "SP", region)
	assert.Len(t, rows, 4)
	for _, r := range rows {
		assert.Equal(t, "1", r.Code)
	}
}

func TestSortConsolidatedRows(t *testing.T) {
	four, two := 4, 2
	rows := []domain.ConsolidatedRow{
		{CompositeKey: "c", Severity: nil, Weight: domain.CellOf(ptr(9))},
		{CompositeKey: "b", Severity: &two, Weight: domain.NoData},
		{CompositeKey: "a", Severity: &two, Weight: domain.CellOf(ptr(0.5))},
		{CompositeKey: "d", Severity: &four, Weight: domain.CellOf(ptr(0.1))},
	}

	SortConsolidatedRows(rows)

	keys := []string{rows[0].CompositeKey, rows[1].CompositeKey, rows[2].CompositeKey, rows[3].CompositeKey}
	assert.Equal(t, []string{"d", "a", "b", "c"}, keys)
}

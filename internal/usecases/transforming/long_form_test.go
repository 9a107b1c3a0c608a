package transforming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

func sampleWide() *domain.WideTable {
	return &domain.WideTable{
		Months: []string{"01/2024", "02/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"20", "30"}},
			{UF: "RJ", Code: "1101001", Description: "Arroz", Values: []string{"80", "abc"}},
			{UF: "SP", Code: "5101002", Description: "Corte de cabelo", Values: []string{"10", ""}},
		},
	}
}

func findRow(rows []domain.LongFormRow, uf, code, month string) *domain.LongFormRow {
	for i := range rows {
		if rows[i].UF == uf && rows[i].Code == code && rows[i].Month == month {
			return &rows[i]
		}
	}
	return nil
}

func TestToLongForm(t *testing.T) {
	services := domain.NewReferenceSet([]string{"Corte de cabelo"})
	exceptions := domain.NewReferenceSet(nil)

	result := ToLongForm(sampleWide(), exceptions, services)

	// 3 linhas originais + 2 linhas BR, 2 meses cada
	require.Len(t, result.Rows, 10)
	assert.Equal(t, []string{"01/2024", "02/2024"}, result.Months)

	t.Run("valor inválido vira nulo", func(t *testing.T) {
		row := findRow(result.Rows, "RJ", "1101001", "02/2024")
		require.NotNil(t, row)
		assert.Nil(t, row.Value)
	})

	t.Run("BR soma as UFs e ignora inválidos", func(t *testing.T) {
		row := findRow(result.Rows, domain.NationalRegion, "1101001", "01/2024")
		require.NotNil(t, row)
		require.NotNil(t, row.Value)
		assert.Equal(t, 100.0, *row.Value)

		row = findRow(result.Rows, domain.NationalRegion, "1101001", "02/2024")
		require.NotNil(t, row)
		require.NotNil(t, row.Value)
		assert.Equal(t, 30.0, *row.Value)
	})

	t.Run("marcações por substring", func(t *testing.T) {
		row := findRow(result.Rows, "SP", "5101002", "01/2024")
		require.NotNil(t, row)
		assert.True(t, row.Service)
		assert.False(t, row.Exception)
		assert.Equal(t, "5101002 - Corte de cabelo", row.CompositeKey)

		row = findRow(result.Rows, "SP", "1101001", "01/2024")
		require.NotNil(t, row)
		assert.False(t, row.Service)
	})
}

func TestToLongForm_EmptyInputs(t *testing.T) {
	result := ToLongForm(nil, domain.NewReferenceSet(nil), domain.NewReferenceSet(nil))

	assert.Empty(t, result.Rows)
	assert.True(t, result.Wide.IsEmpty())
}

func TestToLongForm_RowsPerRecord(t *testing.T) {
	wide := sampleWide()
	result := ToLongForm(wide, domain.NewReferenceSet(nil), domain.NewReferenceSet(nil))

	counts := make(map[domain.RecordKey]int)
	for _, row := range result.Rows {
		counts[domain.RecordKey{UF: row.UF, Code: row.Code, Description: row.Description}]++
	}

	for _, record := range result.Wide.Records {
		assert.Equal(t, len(wide.Months), counts[record.Key()], record.Key())
	}
}

// Reconstruir a tabela larga a partir das linhas longas deve devolver os mesmos valores
func TestToLongForm_RoundTrip(t *testing.T) {
	wide := sampleWide()
	result := ToLongForm(wide, domain.NewReferenceSet(nil), domain.NewReferenceSet(nil))

	rebuilt := make(map[domain.RecordKey]map[string]*float64)
	for _, row := range result.Rows {
		key := domain.RecordKey{UF: row.UF, Code: row.Code, Description: row.Description}
		if rebuilt[key] == nil {
			rebuilt[key] = make(map[string]*float64)
		}
		rebuilt[key][row.Month] = row.Value
	}

	for _, record := range wide.Records {
		for i, month := range wide.Months {
			got := rebuilt[record.Key()][month]
			switch record.Values[i] {
			case "abc", "":
				assert.Nil(t, got)
			default:
				require.NotNil(t, got)
				assert.Equal(t, record.Values[i], utils.FormatNumber(*got))
			}
		}
	}
}

func TestAppendNationalAggregate(t *testing.T) {
	tests := []struct {
		name     string
		wide     *domain.WideTable
		expected map[string][]string
	}{
		{
			name: "soma por código e descrição",
			wide: &domain.WideTable{
				Months: []string{"01/2024"},
				Records: []domain.QuotationRecord{
					{UF: "SP", Code: "1", Description: "A", Values: []string{"20"}},
					{UF: "RJ", Code: "1", Description: "A", Values: []string{"80"}},
					{UF: "RJ", Code: "2", Description: "B", Values: []string{"1.5"}},
				},
			},
			expected: map[string][]string{"1": {"100"}, "2": {"1.5"}},
		},
		{
			name: "linhas BR de entrada são descartadas",
			wide: &domain.WideTable{
				Months: []string{"01/2024"},
				Records: []domain.QuotationRecord{
					{UF: "BR", Code: "1", Description: "A", Values: []string{"999"}},
					{UF: "SP", Code: "1", Description: "A", Values: []string{"7"}},
				},
			},
			expected: map[string][]string{"1": {"7"}},
		},
		{
			name: "todos inválidos somam zero",
			wide: &domain.WideTable{
				Months: []string{"01/2024"},
				Records: []domain.QuotationRecord{
					{UF: "SP", Code: "1", Description: "A", Values: []string{"x"}},
				},
			},
			expected: map[string][]string{"1": {"0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AppendNationalAggregate(tt.wide)

			national := make(map[string][]string)
			for _, r := range result.Records {
				if r.UF == domain.NationalRegion {
					national[r.Code] = r.Values
				}
			}
			assert.Equal(t, tt.expected, national)
		})
	}
}

func TestAppendNationalAggregate_DoesNotMutateInput(t *testing.T) {
	wide := sampleWide()
	before := len(wide.Records)

	AppendNationalAggregate(wide)

	assert.Len(t, wide.Records, before)
	assert.Equal(t, "20", wide.Records[0].Values[0])
}

package transforming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

func TestMergeIncremental(t *testing.T) {
	current := &domain.WideTable{
		Months: []string{"01/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1", Description: "Arroz", Values: []string{"20"}},
			{UF: "RJ", Code: "1", Description: "Arroz", Values: []string{"80"}},
		},
	}

	tests := []struct {
		name          string
		current       *domain.WideTable
		incoming      *domain.WideTable
		expectedMonth []string
		validate      func(t *testing.T, result *domain.WideTable)
	}{
		{
			name:    "base vazia recebe a planilha inteira",
			current: &domain.WideTable{},
			incoming: &domain.WideTable{
				Months:  []string{"01/2024"},
				Records: []domain.QuotationRecord{{UF: "SP", Code: "1", Description: "Arroz", Values: []string{"5"}}},
			},
			expectedMonth: []string{"01/2024"},
			validate: func(t *testing.T, result *domain.WideTable) {
				require.Len(t, result.Records, 1)
				assert.Equal(t, "5", result.Records[0].Values[0])
			},
		},
		{
			name:    "mês existente não é sobrescrito",
			current: current,
			incoming: &domain.WideTable{
				Months:  []string{"01/2024"},
				Records: []domain.QuotationRecord{{UF: "SP", Code: "1", Description: "Arroz", Values: []string{"999"}}},
			},
			expectedMonth: nil,
			validate: func(t *testing.T, result *domain.WideTable) {
				assert.Equal(t, []string{"01/2024"}, result.Months)
				assert.Equal(t, "20", result.Records[0].Values[0])
			},
		},
		{
			name:    "mês novo é acrescentado com junção à esquerda",
			current: current,
			incoming: &domain.WideTable{
				Months: []string{"01/2024", "02/2024"},
				Records: []domain.QuotationRecord{
					{UF: "SP", Code: "1", Description: "Arroz", Values: []string{"999", "25"}},
					{UF: "MG", Code: "1", Description: "Arroz", Values: []string{"1", "2"}},
				},
			},
			expectedMonth: []string{"02/2024"},
			validate: func(t *testing.T, result *domain.WideTable) {
				assert.Equal(t, []string{"01/2024", "02/2024"}, result.Months)
				require.Len(t, result.Records, 2)
				assert.Equal(t, []string{"20", "25"}, result.Records[0].Values)
				// RJ não veio na planilha nova
				assert.Equal(t, []string{"80", ""}, result.Records[1].Values)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, months := MergeIncremental(tt.current, tt.incoming)

			assert.Equal(t, tt.expectedMonth, months)
			tt.validate(t, result)
		})
	}

	// a tabela atual nunca é alterada
	assert.Equal(t, []string{"01/2024"}, current.Months)
	assert.Equal(t, []string{"20"}, current.Records[0].Values)
}

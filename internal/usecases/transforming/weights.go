package transforming

import (
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// ProcessWeights trata a base de ponderações:
//   - mantém apenas subitens (código de estrutura com 6 ou mais caracteres);
//   - monta a chave composta e o grupo a partir do código da chave;
//   - converte os números no formato brasileiro;
//   - troca o nome da capital pela UF.
func ProcessWeights(raw *domain.RawWeightTable) *domain.WeightTable {
	if raw == nil {
		return &domain.WeightTable{}
	}

	months := make([]string, 0, len(raw.Months))
	indexes := make([]int, 0, len(raw.Months))
	for i, header := range raw.Months {
		month, ok := domain.ExtractMonth(header)
		if !ok {
			continue
		}
		months = append(months, month)
		indexes = append(indexes, i)
	}

	records := make([]domain.WeightRecord, 0, len(raw.Records))
	for _, record := range raw.Records {
		if utf8.RuneCountInString(record.StructuralCode) < domain.MinStructuralCodeLength {
			continue
		}

		key := strings.TrimSpace(domain.BuildCompositeKey(record.StructuralCode, record.Description))

		values := make([]*float64, len(indexes))
		for j, idx := range indexes {
			if idx < len(record.Values) {
				values[j] = utils.ParseLocaleNumber(record.Values[idx])
			}
		}

		records = append(records, domain.WeightRecord{
			UF:             MapCapitalToUF(record.Capital),
			StructuralCode: record.StructuralCode,
			Description:    record.Description,
			CompositeKey:   key,
			Group:          domain.GroupOf(domain.LeadingCode(key)),
			Values:         values,
		})
	}

	return &domain.WeightTable{Months: months, Records: records}
}

// MapCapitalToUF retorna a UF da capital; nomes desconhecidos são mantidos
func MapCapitalToUF(capital string) string {
	if uf, ok := domain.CapitalToUF[capital]; ok {
		return uf
	}
	return capital
}

package aggregating

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// ComputeStatistics calcula, por UF, primeiro quartil, mediana, média e terceiro
// quartil das quantidades do pivot. Células sem dado, itens de exceção e valores
// classificados como Suficiente ficam de fora.
func ComputeStatistics(pivot *domain.CrossTab, exceptionMap map[string]bool) []domain.RegionStatistics {
	if pivot.IsEmpty() {
		return []domain.RegionStatistics{}
	}

	values := make(map[string][]float64, len(pivot.Regions))
	for _, key := range pivot.Keys {
		if exceptionMap[key] {
			continue
		}
		for _, uf := range pivot.Regions {
			cell := pivot.Cell(key, uf)
			if !cell.HasData {
				continue
			}
			tier, ok := domain.Classify(cell.Ptr())
			if !ok || tier == domain.TierSufficient {
				continue
			}
			values[uf] = append(values[uf], cell.Value)
		}
	}

	result := make([]domain.RegionStatistics, 0, len(values))
	for _, uf := range pivot.Regions {
		v, ok := values[uf]
		if !ok {
			continue
		}
		sort.Float64s(v)
		result = append(result, domain.RegionStatistics{
			UF:     uf,
			Q1:     utils.RoundWithTwoDecimalPlace(Quantile(v, 0.25)),
			Median: utils.RoundWithTwoDecimalPlace(Quantile(v, 0.5)),
			Mean:   utils.RoundWithTwoDecimalPlace(mean(v)),
			Q3:     utils.RoundWithTwoDecimalPlace(Quantile(v, 0.75)),
			Count:  len(v),
		})
	}
	return result
}

// Quantile calcula o quantil q com interpolação linear entre as posições vizinhas.
// sorted deve estar em ordem crescente.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).InexactFloat64()
}

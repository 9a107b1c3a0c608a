package consolidating

import (
	"fmt"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

// JoinedRow é uma linha da junção entre o pivot de quantidades e o de ponderações
type JoinedRow struct {
	QuantityKey string // Chave composta do lado das quantidades
	WeightKey   string // Chave composta do lado das ponderações
	Code        string
	Quantity    domain.PivotCell
	Weight      domain.PivotCell
}

// Join faz a junção interna dos pivots pelo código (segmento antes de " - " da chave
// composta). Itens sem correspondência nos dois lados são descartados e códigos
// repetidos geram todas as combinações.
//
// A junção só é válida com exatamente uma UF de cada lado e sendo a mesma UF.
func Join(quantities, weights *domain.CrossTab) ([]JoinedRow, string, error) {
	if len(quantities.Regions) != 1 || len(weights.Regions) != 1 || quantities.Regions[0] != weights.Regions[0] {
		return nil, "", NewStructuralError(nil, fmt.Sprintf(
			"esperava exatamente 1 coluna de quantidade e 1 de ponderação, encontrou quantidades=%v ponderações=%v",
			quantities.Regions, weights.Regions,
		))
	}
	region := quantities.Regions[0]

	weightsByCode := make(map[string][]string, len(weights.Keys))
	for _, key := range weights.Keys {
		code := domain.LeadingCode(key)
		weightsByCode[code] = append(weightsByCode[code], key)
	}

	rows := make([]JoinedRow, 0, len(quantities.Keys))
	for _, qKey := range quantities.Keys {
		code := domain.LeadingCode(qKey)
		for _, wKey := range weightsByCode[code] {
			rows = append(rows, JoinedRow{
				QuantityKey: qKey,
				WeightKey:   wKey,
				Code:        code,
				Quantity:    quantities.Cell(qKey, region),
				Weight:      weights.Cell(wKey, region),
			})
		}
	}

	return rows, region, nil
}

// Package consolidating monta a tabela consolidada (quantidade × ponderação) e a série histórica
package consolidating

import (
	"fmt"
	"sort"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// BuildQuantityCrossTab monta o pivot chave composta × UF com as quantidades do mês
// de referência. A coluna BR é descartada.
func BuildQuantityCrossTab(table *domain.QuantityTable, referenceMonth string) (*domain.CrossTab, error) {
	if table == nil || len(table.Rows) == 0 {
		return emptyCrossTab(), nil
	}

	idx := indexOf(table.Months, referenceMonth)
	if idx < 0 {
		return nil, NewStructuralError(ErrReferenceMonthNotFound, fmt.Sprintf("quantidades sem a coluna %s", referenceMonth))
	}

	builder := newCrossTabBuilder()
	for _, row := range table.Rows {
		cell := domain.CellOf(utils.ParseNumber(row.Value(idx)))
		if err := builder.add(row.CompositeKey, row.UF, cell); err != nil {
			return nil, err
		}
	}
	return builder.build(), nil
}

// BuildWeightCrossTab monta o pivot chave composta × UF com as ponderações do mês
// de referência. A coluna BR é descartada.
func BuildWeightCrossTab(table *domain.WeightTable, referenceMonth string) (*domain.CrossTab, error) {
	if table == nil || len(table.Records) == 0 {
		return emptyCrossTab(), nil
	}

	idx := table.MonthIndex(referenceMonth)
	if idx < 0 {
		return nil, NewStructuralError(ErrReferenceMonthNotFound, fmt.Sprintf("ponderações sem a coluna %s", referenceMonth))
	}

	builder := newCrossTabBuilder()
	for _, record := range table.Records {
		if err := builder.add(record.CompositeKey, record.UF, domain.CellOf(record.Value(idx))); err != nil {
			return nil, err
		}
	}
	return builder.build(), nil
}

type crossTabBuilder struct {
	keys    []string
	regions map[string]struct{}
	cells   map[string]map[string]domain.PivotCell
}

func newCrossTabBuilder() *crossTabBuilder {
	return &crossTabBuilder{
		regions: make(map[string]struct{}),
		cells:   make(map[string]map[string]domain.PivotCell),
	}
}

func (b *crossTabBuilder) add(key, region string, cell domain.PivotCell) error {
	row, ok := b.cells[key]
	if !ok {
		row = make(map[string]domain.PivotCell)
		b.cells[key] = row
		b.keys = append(b.keys, key)
	}

	if _, dup := row[region]; dup {
		return NewStructuralError(ErrDuplicateEntry, fmt.Sprintf("%s em %s", key, region))
	}
	row[region] = cell
	b.regions[region] = struct{}{}
	return nil
}

func (b *crossTabBuilder) build() *domain.CrossTab {
	regions := make([]string, 0, len(b.regions))
	for r := range b.regions {
		if r == domain.NationalRegion {
			continue
		}
		regions = append(regions, r)
	}
	sort.Strings(regions)

	keys := append([]string(nil), b.keys...)
	sort.Strings(keys)

	cells := make(map[string]map[string]domain.PivotCell, len(b.cells))
	for key, row := range b.cells {
		delete(row, domain.NationalRegion)
		cells[key] = row
	}

	return &domain.CrossTab{Keys: keys, Regions: regions, Cells: cells}
}

func emptyCrossTab() *domain.CrossTab {
	return &domain.CrossTab{
		Keys:    []string{},
		Regions: []string{},
		Cells:   map[string]map[string]domain.PivotCell{},
	}
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

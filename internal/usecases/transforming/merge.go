package transforming

import (
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

// MergeIncremental acrescenta à tabela atual apenas as colunas de mês que ela ainda
// não possui, com junção à esquerda por (UF, código, descrição). Valores existentes
// nunca são sobrescritos e linhas novas da planilha recebida são ignoradas.
// Retorna a tabela resultante e os meses acrescentados.
func MergeIncremental(current, incoming *domain.WideTable) (*domain.WideTable, []string) {
	if current.IsEmpty() {
		if incoming == nil {
			return &domain.WideTable{}, nil
		}
		return cloneWide(incoming), append([]string(nil), incoming.Months...)
	}

	if incoming == nil {
		return cloneWide(current), nil
	}

	existing := make(map[string]struct{}, len(current.Months))
	for _, m := range current.Months {
		existing[m] = struct{}{}
	}

	newMonths := make([]string, 0)
	newIndexes := make([]int, 0)
	for i, m := range incoming.Months {
		if _, ok := existing[m]; ok {
			continue
		}
		existing[m] = struct{}{}
		newMonths = append(newMonths, m)
		newIndexes = append(newIndexes, i)
	}

	if len(newMonths) == 0 {
		return cloneWide(current), nil
	}

	incomingByKey := make(map[domain.RecordKey]domain.QuotationRecord, len(incoming.Records))
	for _, record := range incoming.Records {
		if _, dup := incomingByKey[record.Key()]; dup {
			continue
		}
		incomingByKey[record.Key()] = record
	}

	months := append(append([]string(nil), current.Months...), newMonths...)
	records := make([]domain.QuotationRecord, 0, len(current.Records))
	for _, record := range current.Records {
		merged := copyRecord(record, len(months))
		if source, ok := incomingByKey[record.Key()]; ok {
			for j, idx := range newIndexes {
				merged.Values[len(current.Months)+j] = source.Value(idx)
			}
		}
		records = append(records, merged)
	}

	return &domain.WideTable{Months: months, Records: records}, newMonths
}

func cloneWide(t *domain.WideTable) *domain.WideTable {
	records := make([]domain.QuotationRecord, 0, len(t.Records))
	for _, r := range t.Records {
		records = append(records, copyRecord(r, len(t.Months)))
	}
	return &domain.WideTable{Months: append([]string(nil), t.Months...), Records: records}
}

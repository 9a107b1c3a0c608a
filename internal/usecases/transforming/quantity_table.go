package transforming

import (
	"strings"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

// PrepareQuantityTable monta a tabela usada na tabela consolidada: chave composta,
// UF normalizada, grupo (4 primeiros caracteres do código) e marcações.
func PrepareQuantityTable(wide *domain.WideTable, exceptions, services domain.ReferenceSet) *domain.QuantityTable {
	if wide == nil {
		return &domain.QuantityTable{}
	}

	rows := make([]domain.QuantityRow, 0, len(wide.Records))
	for _, record := range wide.Records {
		record = copyRecord(record, len(wide.Months))
		record.UF = strings.ToUpper(strings.TrimSpace(record.UF))

		key := record.CompositeKey()
		rows = append(rows, domain.QuantityRow{
			QuotationRecord: record,
			CompositeKey:    key,
			Group:           domain.GroupOf(record.Code),
			Exception:       exceptions.Matches(key),
			Service:         services.Matches(key),
		})
	}

	return &domain.QuantityTable{
		Months: append([]string(nil), wide.Months...),
		Rows:   rows,
	}
}

// FlagMaps retorna os mapas chave composta → exceção e chave composta → serviço
func FlagMaps(table *domain.QuantityTable) (exceptionMap, serviceMap map[string]bool) {
	exceptionMap = make(map[string]bool)
	serviceMap = make(map[string]bool)
	if table == nil {
		return exceptionMap, serviceMap
	}

	for _, row := range table.Rows {
		exceptionMap[row.CompositeKey] = row.Exception
		serviceMap[row.CompositeKey] = row.Service
	}
	return exceptionMap, serviceMap
}

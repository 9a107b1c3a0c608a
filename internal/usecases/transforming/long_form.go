// Package transforming contém as transformações das tabelas de cotações e ponderações
package transforming

import (
	"sort"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// LongForm é o resultado da transformação para o formato longo
type LongForm struct {
	Rows   []domain.LongFormRow
	Wide   *domain.WideTable // Tabela original acrescida das linhas BR
	Months []string
}

// ToLongForm agrega a região nacional (BR), transforma a tabela larga em linhas
// UF × item × mês e marca os itens de exceção e de serviços.
func ToLongForm(wide *domain.WideTable, exceptions, services domain.ReferenceSet) *LongForm {
	if wide == nil {
		wide = &domain.WideTable{}
	}

	withNational := AppendNationalAggregate(wide)
	months := withNational.Months

	rows := make([]domain.LongFormRow, 0, len(withNational.Records)*len(months))
	for _, record := range withNational.Records {
		key := record.CompositeKey()
		exception := exceptions.Matches(key)
		service := services.Matches(key)

		for i, month := range months {
			rows = append(rows, domain.LongFormRow{
				UF:           record.UF,
				Code:         record.Code,
				Description:  record.Description,
				Month:        month,
				Value:        utils.ParseNumber(record.Value(i)),
				CompositeKey: key,
				Exception:    exception,
				Service:      service,
			})
		}
	}

	return &LongForm{
		Rows:   rows,
		Wide:   withNational,
		Months: append([]string(nil), months...),
	}
}

type itemKey struct {
	code        string
	description string
}

// AppendNationalAggregate soma cada mês de todas as UFs por (código, descrição) e
// acrescenta essas linhas com UF = BR ao final de uma cópia da tabela.
// Valores inválidos contam como zero na soma.
func AppendNationalAggregate(wide *domain.WideTable) *domain.WideTable {
	months := append([]string(nil), wide.Months...)

	sums := make(map[itemKey][]float64)
	order := make([]itemKey, 0)
	for _, record := range wide.Records {
		if record.UF == domain.NationalRegion {
			continue
		}

		key := itemKey{code: record.Code, description: record.Description}
		acc, ok := sums[key]
		if !ok {
			acc = make([]float64, len(months))
			sums[key] = acc
			order = append(order, key)
		}

		for i := range months {
			if v := utils.ParseNumber(record.Value(i)); v != nil {
				acc[i] += *v
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].code != order[j].code {
			return order[i].code < order[j].code
		}
		return order[i].description < order[j].description
	})

	records := make([]domain.QuotationRecord, 0, len(wide.Records)+len(order))
	for _, record := range wide.Records {
		if record.UF == domain.NationalRegion {
			continue
		}
		records = append(records, copyRecord(record, len(months)))
	}

	for _, key := range order {
		values := make([]string, len(months))
		for i, v := range sums[key] {
			values[i] = utils.FormatNumber(v)
		}
		records = append(records, domain.QuotationRecord{
			UF:          domain.NationalRegion,
			Code:        key.code,
			Description: key.description,
			Values:      values,
		})
	}

	return &domain.WideTable{Months: months, Records: records}
}

func copyRecord(record domain.QuotationRecord, size int) domain.QuotationRecord {
	values := make([]string, size)
	copy(values, record.Values)
	record.Values = values
	return record
}

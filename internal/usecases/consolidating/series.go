package consolidating

import (
	"sort"
	"time"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

type seriesKey struct {
	uf   string
	item string
}

type accumulator struct {
	sum   float64
	count int
}

// BuildTimeSeries monta a série histórica (índice = mês, colunas = UF × item) com a
// média dos valores de cada combinação. Quando há grupo selecionado, o filtro de
// grupo tem precedência sobre o de itens.
func BuildTimeSeries(rows []domain.LongFormRow, filters domain.SeriesFilters) (*domain.TimeSeries, error) {
	if len(filters.Regions) == 0 {
		return nil, ErrSeriesRegionRequired
	}
	if len(filters.Items) == 0 && len(filters.Groups) == 0 {
		return nil, ErrSeriesItemRequired
	}

	regions := toSet(filters.Regions)
	groups := toSet(filters.Groups)
	items := toSet(filters.Items)

	dates := make(map[time.Time]struct{})
	keys := make(map[seriesKey]struct{})
	cells := make(map[seriesKey]map[time.Time]*accumulator)

	for _, row := range rows {
		if _, ok := regions[row.UF]; !ok {
			continue
		}
		if len(filters.Groups) > 0 {
			if _, ok := groups[domain.GroupOf(row.Code)]; !ok {
				continue
			}
		} else if _, ok := items[row.CompositeKey]; !ok {
			continue
		}

		label, ok := domain.ExtractMonth(row.Month)
		if !ok {
			continue
		}
		date := domain.ParseMonth(label)
		if date == nil {
			continue
		}

		key := seriesKey{uf: row.UF, item: row.CompositeKey}
		dates[*date] = struct{}{}
		keys[key] = struct{}{}

		if row.Value == nil {
			continue
		}
		if cells[key] == nil {
			cells[key] = make(map[time.Time]*accumulator)
		}
		acc, ok := cells[key][*date]
		if !ok {
			acc = &accumulator{}
			cells[key][*date] = acc
		}
		acc.sum += *row.Value
		acc.count++
	}

	orderedDates := make([]time.Time, 0, len(dates))
	for d := range dates {
		orderedDates = append(orderedDates, d)
	}
	sort.Slice(orderedDates, func(i, j int) bool { return orderedDates[i].Before(orderedDates[j]) })

	orderedKeys := make([]seriesKey, 0, len(keys))
	for k := range keys {
		orderedKeys = append(orderedKeys, k)
	}
	sort.Slice(orderedKeys, func(i, j int) bool {
		if orderedKeys[i].uf != orderedKeys[j].uf {
			return orderedKeys[i].uf < orderedKeys[j].uf
		}
		return orderedKeys[i].item < orderedKeys[j].item
	})

	series := &domain.TimeSeries{
		Dates: make([]string, 0, len(orderedDates)),
		Lines: make([]domain.SeriesLine, 0, len(orderedKeys)),
	}
	for _, d := range orderedDates {
		series.Dates = append(series.Dates, d.Format(domain.MonthLayout))
	}

	maxValue := 0.0
	for _, key := range orderedKeys {
		line := domain.SeriesLine{UF: key.uf, Item: key.item, Points: make([]*float64, len(orderedDates))}
		for i, d := range orderedDates {
			acc, ok := cells[key][d]
			if !ok || acc.count == 0 {
				continue
			}
			mean := acc.sum / float64(acc.count)
			line.Points[i] = &mean
			if mean > maxValue {
				maxValue = mean
			}
		}
		series.Lines = append(series.Lines, line)
	}

	series.MaxValue = maxValue * 1.1
	series.Bands = domain.ChartBands(series.MaxValue)
	return series, nil
}

// BuildFilterOptions lista as opções dos filtros a partir da tabela de quantidades
func BuildFilterOptions(table *domain.QuantityTable) domain.FilterOptions {
	options := domain.FilterOptions{
		Regions:       []string{},
		SeriesRegions: []string{},
		Items:         []string{},
		Groups:        []string{},
		Months:        []string{},
	}
	if table == nil {
		return options
	}

	regions := make(map[string]struct{})
	items := make(map[string]struct{})
	groups := make(map[string]struct{})
	for _, row := range table.Rows {
		regions[row.UF] = struct{}{}
		groups[row.Group] = struct{}{}
		if _, ok := items[row.CompositeKey]; !ok {
			items[row.CompositeKey] = struct{}{}
			options.Items = append(options.Items, row.CompositeKey)
		}
	}

	for uf := range regions {
		if uf != domain.NationalRegion {
			options.Regions = append(options.Regions, uf)
		}
	}
	sort.Strings(options.Regions)

	options.SeriesRegions = append(options.SeriesRegions, options.Regions...)
	if len(options.Regions) > 0 {
		options.SeriesRegions = append(options.SeriesRegions, domain.NationalRegion)
		sort.Strings(options.SeriesRegions)
	}

	for g := range groups {
		options.Groups = append(options.Groups, g)
	}
	sort.Strings(options.Groups)

	options.Months = append(options.Months, table.Months...)
	if len(table.Months) > 0 {
		options.ReferenceMonth = table.Months[len(table.Months)-1]
	}
	return options
}

package consolidating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/transforming"
)

func seriesRows() []domain.LongFormRow {
	wide := &domain.WideTable{
		Months: []string{"02/2024", "01/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"20", "10"}},
			{UF: "RJ", Code: "1101001", Description: "Arroz", Values: []string{"80", ""}},
			{UF: "SP", Code: "1201001", Description: "Carne", Values: []string{"200", "150"}},
		},
	}
	return transforming.ToLongForm(wide, domain.NewReferenceSet(nil), domain.NewReferenceSet(nil)).Rows
}

func TestBuildTimeSeries(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.SeriesFilters
		validate func(t *testing.T, series *domain.TimeSeries)
	}{
		{
			name:    "item selecionado com BR",
			filters: domain.SeriesFilters{Regions: []string{"SP", "BR"}, Items: []string{"1101001 - Arroz"}},
			validate: func(t *testing.T, series *domain.TimeSeries) {
				assert.Equal(t, []string{"01/2024", "02/2024"}, series.Dates)
				require.Len(t, series.Lines, 2)

				br := series.Lines[0]
				assert.Equal(t, "BR", br.UF)
				require.NotNil(t, br.Points[1])
				assert.Equal(t, 100.0, *br.Points[1])

				sp := series.Lines[1]
				assert.Equal(t, "SP", sp.UF)
				assert.Equal(t, 10.0, *sp.Points[0])

				assert.InDelta(t, 110.0, series.MaxValue, 1e-9)
				require.Len(t, series.Bands, 4)
				assert.InDelta(t, 110.0, series.Bands[3].To, 1e-9)
			},
		},
		{
			name:    "grupo tem precedência sobre itens",
			filters: domain.SeriesFilters{Regions: []string{"SP"}, Groups: []string{"1201"}, Items: []string{"1101001 - Arroz"}},
			validate: func(t *testing.T, series *domain.TimeSeries) {
				require.Len(t, series.Lines, 1)
				assert.Equal(t, "1201001 - Carne", series.Lines[0].Item)
			},
		},
		{
			name:    "valor ausente vira ponto nulo",
			filters: domain.SeriesFilters{Regions: []string{"RJ"}, Items: []string{"1101001 - Arroz"}},
			validate: func(t *testing.T, series *domain.TimeSeries) {
				require.Len(t, series.Lines, 1)
				assert.Nil(t, series.Lines[0].Points[0])
				assert.Equal(t, 80.0, *series.Lines[0].Points[1])
			},
		},
	}

	rows := seriesRows()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := BuildTimeSeries(rows, tt.filters)
			require.NoError(t, err)
			tt.validate(t, series)
		})
	}
}

func TestBuildTimeSeries_SelectionErrors(t *testing.T) {
	_, err := BuildTimeSeries(seriesRows(), domain.SeriesFilters{Items: []string{"x"}})
	assert.ErrorIs(t, err, ErrSeriesRegionRequired)

	_, err = BuildTimeSeries(seriesRows(), domain.SeriesFilters{Regions: []string{"SP"}})
	assert.ErrorIs(t, err, ErrSeriesItemRequired)
	assert.True(t, IsSelectionError(err))
}

func TestBuildFilterOptions(t *testing.T) {
	options := BuildFilterOptions(quantityTable(nil, nil))

	assert.Equal(t, []string{"RJ", "SP"}, options.Regions)
	assert.Equal(t, []string{"BR", "RJ", "SP"}, options.SeriesRegions)
	assert.Equal(t, []string{"1101", "1201", "5101", "9999"}, options.Groups)
	assert.Equal(t, month, options.ReferenceMonth)
	assert.Contains(t, options.Items, "1101001 - Arroz")
	assert.Len(t, options.Items, 5)
}

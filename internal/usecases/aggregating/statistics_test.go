package aggregating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

func cell(v float64) domain.PivotCell {
	return domain.PivotCell{Value: v, HasData: true}
}

func TestQuantile(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	assert.Equal(t, 17.5, Quantile(values, 0.25))
	assert.Equal(t, 25.0, Quantile(values, 0.5))
	assert.Equal(t, 32.5, Quantile(values, 0.75))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.75))
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestComputeStatistics(t *testing.T) {
	pivot := &domain.CrossTab{
		Keys:    []string{"1 - A", "2 - B", "3 - C", "4 - D", "5 - E"},
		Regions: []string{"RJ", "SP"},
		Cells: map[string]map[string]domain.PivotCell{
			"1 - A": {"SP": cell(10), "RJ": cell(200)},
			"2 - B": {"SP": cell(20), "RJ": domain.NoData},
			"3 - C": {"SP": cell(30), "RJ": cell(50)},
			"4 - D": {"SP": cell(5)},
			"5 - E": {"SP": cell(40)},
		},
	}

	stats := ComputeStatistics(pivot, map[string]bool{"4 - D": true})

	require.Len(t, stats, 2)

	rj := stats[0]
	assert.Equal(t, "RJ", rj.UF)
	assert.Equal(t, 1, rj.Count)
	assert.Equal(t, 50.0, rj.Median)

	sp := stats[1]
	assert.Equal(t, "SP", sp.UF)
	assert.Equal(t, 4, sp.Count)
	assert.Equal(t, 17.5, sp.Q1)
	assert.Equal(t, 25.0, sp.Median)
	assert.Equal(t, 25.0, sp.Mean)
	assert.Equal(t, 32.5, sp.Q3)
}

func TestComputeStatistics_EmptyPivot(t *testing.T) {
	assert.Empty(t, ComputeStatistics(&domain.CrossTab{}, nil))
}

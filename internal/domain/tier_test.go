package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected Tier
		ok       bool
	}{
		{"zero é super crítico", ptr(0), TierSuperCritical, true},
		{"25 é super crítico", ptr(25), TierSuperCritical, true},
		{"25,5 é crítico", ptr(25.5), TierCritical, true},
		{"26 é crítico", ptr(26), TierCritical, true},
		{"55 é crítico", ptr(55), TierCritical, true},
		{"56 é aceitável", ptr(56), TierAcceptable, true},
		{"100 é aceitável", ptr(100), TierAcceptable, true},
		{"101 é suficiente", ptr(101), TierSufficient, true},
		{"nulo não tem criticidade", nil, "", false},
		{"NaN não tem criticidade", ptr(math.NaN()), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := Classify(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, tier)
		})
	}
}

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected int
		ok       bool
	}{
		{TierSuperCritical, 4, true},
		{TierCritical, 3, true},
		{TierAcceptable, 2, true},
		{TierSufficient, 1, true},
		{TierException, 0, true},
		{TierService, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			rank, ok := SeverityRank(tt.tier)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rank)
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name     string
		weight   *float64
		expected Priority
		ok       bool
	}{
		{"acima de 1 é prioridade 1", ptr(1.01), Priority1, true},
		{"exatamente 1 é prioridade 2", ptr(1.0), Priority2, true},
		{"acima de 0,4 é prioridade 2", ptr(0.41), Priority2, true},
		{"exatamente 0,4 é prioridade 3", ptr(0.4), Priority3, true},
		{"zero é prioridade 3", ptr(0), Priority3, true},
		{"sem ponderação", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ClassifyPriority(tt.weight)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestShortfall(t *testing.T) {
	v, ok := Shortfall(ptr(20))
	assert.True(t, ok)
	assert.Equal(t, 80.0, v)

	v, ok = Shortfall(ptr(150))
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = Shortfall(nil)
	assert.False(t, ok)
}

func TestReferenceSet_Matches(t *testing.T) {
	set := NewReferenceSet([]string{"Arroz", "", "Arroz"})

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Matches("1101001 - Arroz polido"))
	assert.False(t, set.Matches("1101002 - Feijão"))
	assert.False(t, NewReferenceSet(nil).Matches("qualquer coisa"))
}

func TestPivotCell_JSON(t *testing.T) {
	data, err := CellOf(nil).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"-"`, string(data))

	data, err = CellOf(ptr(12)).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `12`, string(data))

	var cell PivotCell
	assert.NoError(t, cell.UnmarshalJSON([]byte(`"-"`)))
	assert.False(t, cell.HasData)
	assert.NoError(t, cell.UnmarshalJSON([]byte(`3.5`)))
	assert.Equal(t, PivotCell{Value: 3.5, HasData: true}, cell)
}

func TestParseMonth(t *testing.T) {
	m := ParseMonth("03/2024")
	if assert.NotNil(t, m) {
		assert.Equal(t, 2024, m.Year())
		assert.Equal(t, 3, int(m.Month()))
	}
	assert.Nil(t, ParseMonth("Março"))

	label, ok := ExtractMonth("Quantidade 03/2024")
	assert.True(t, ok)
	assert.Equal(t, "03/2024", label)
}

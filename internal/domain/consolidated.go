package domain

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NoDataMarker é exibido nas células do pivot sem valor
const NoDataMarker = "-"

// PivotCell é uma célula do pivot; HasData distingue "sem dado" de zero
type PivotCell struct {
	Value   float64
	HasData bool
}

// NoData é a célula sentinela de ausência de dado
var NoData = PivotCell{}

// CellOf cria uma célula a partir de um valor opcional
func CellOf(v *float64) PivotCell {
	if v == nil {
		return NoData
	}
	return PivotCell{Value: *v, HasData: true}
}

// Ptr retorna o valor da célula ou nil quando sem dado
func (c PivotCell) Ptr() *float64 {
	if !c.HasData {
		return nil
	}
	v := c.Value
	return &v
}

// String formata a célula como na tabela consolidada
func (c PivotCell) String() string {
	if !c.HasData {
		return NoDataMarker
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

func (c PivotCell) MarshalJSON() ([]byte, error) {
	if !c.HasData {
		return json.Marshal(NoDataMarker)
	}
	return json.Marshal(c.Value)
}

func (c *PivotCell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`"`+NoDataMarker+`"`)) || bytes.Equal(data, []byte("null")) {
		*c = NoData
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = PivotCell{Value: v, HasData: true}
	return nil
}

// CrossTab é uma matriz item × UF para um único mês de referência
type CrossTab struct {
	Keys    []string                        `json:"keys"`    // CodigoDescricao, ordenado
	Regions []string                        `json:"regions"` // UFs, ordenadas
	Cells   map[string]map[string]PivotCell `json:"cells"`   // chave -> UF -> célula
}

// Cell retorna a célula ou o sentinela de ausência
func (c *CrossTab) Cell(key, region string) PivotCell {
	row, ok := c.Cells[key]
	if !ok {
		return NoData
	}
	cell, ok := row[region]
	if !ok {
		return NoData
	}
	return cell
}

// IsEmpty indica se o pivot não possui linhas
func (c *CrossTab) IsEmpty() bool {
	return c == nil || len(c.Keys) == 0
}

// ConsolidatedFilters são os filtros da tabela consolidada; filtro vazio não restringe
type ConsolidatedFilters struct {
	Regions       []string   `json:"regions"`
	Items         []string   `json:"items"`
	Groups        []string   `json:"groups"`
	Criticalities []Tier     `json:"criticalities"`
	Priorities    []Priority `json:"priorities"`
}

// ConsolidatedRow é uma linha da tabela consolidada (quantidade × ponderação)
type ConsolidatedRow struct {
	CompositeKey string    `json:"composite_key"`
	Code         string    `json:"code"`
	Region       string    `json:"region"`
	Quantity     PivotCell `json:"quantity"`
	Weight       PivotCell `json:"weight"`
	Criticality  Tier      `json:"criticality,omitempty"`
	Priority     Priority  `json:"priority,omitempty"`
	Severity     *int      `json:"severity"`
	Shortfall    *float64  `json:"shortfall"` // Falta p/ cobertura mínima
	Exception    bool      `json:"exception"`
	Service      bool      `json:"service"`
}

// ConsolidatedView é a tabela consolidada de um mês de referência
type ConsolidatedView struct {
	ReferenceMonth string            `json:"reference_month"`
	Region         string            `json:"region"`
	Rows           []ConsolidatedRow `json:"rows"`
}

// RegionStatistics são os quartis das quantidades não suficientes de uma UF
type RegionStatistics struct {
	UF     string  `json:"uf"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Q3     float64 `json:"q3"`
	Count  int     `json:"count"`
}

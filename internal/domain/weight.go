package domain

// MinStructuralCodeLength é o tamanho mínimo do código de estrutura dos subitens
const MinStructuralCodeLength = 6

// RawWeightRecord é uma linha da planilha de ponderações, antes do tratamento
type RawWeightRecord struct {
	Capital        string   `json:"capital"` // Nome da aba: capital ou BR
	StructuralCode string   `json:"structural_code"`
	Description    string   `json:"description"`
	Values         []string `json:"values"` // Números no formato brasileiro (1.234,56)
}

// RawWeightTable é a tabela de ponderações como lida da planilha
type RawWeightTable struct {
	Months  []string          `json:"months"`
	Records []RawWeightRecord `json:"records"`
}

// IsEmpty indica se a tabela não possui linhas
func (t *RawWeightTable) IsEmpty() bool {
	return t == nil || len(t.Records) == 0
}

// WeightRecord é uma linha da tabela de ponderações tratada
type WeightRecord struct {
	UF             string     `json:"uf"`
	StructuralCode string     `json:"structural_code"`
	Description    string     `json:"description"`
	CompositeKey   string     `json:"composite_key"`
	Group          string     `json:"group"`
	Values         []*float64 `json:"values"` // Alinhado com WeightTable.Months
}

// Value retorna a ponderação da coluna informada
func (r WeightRecord) Value(i int) *float64 {
	if i < 0 || i >= len(r.Values) {
		return nil
	}
	return r.Values[i]
}

// WeightTable é a tabela de ponderações tratada
type WeightTable struct {
	Months  []string       `json:"months"`
	Records []WeightRecord `json:"records"`
}

// MonthIndex retorna a posição da coluna de mês, ou -1
func (t *WeightTable) MonthIndex(month string) int {
	if t == nil {
		return -1
	}
	for i, m := range t.Months {
		if m == month {
			return i
		}
	}
	return -1
}

// CapitalToUF mapeia o nome da capital (aba da planilha de ponderações) para a UF
var CapitalToUF = map[string]string{
	"Belo Horizonte": "MG",
	"Brasília":       "DF",
	"Porto Alegre":   "RS",
	"Recife":         "PE",
	"Rio de Janeiro": "RJ",
	"Salvador":       "BA",
	"São Paulo":      "SP",
	"BR":             "BR",
}

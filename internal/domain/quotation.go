package domain

import (
	"strings"
)

// NationalRegion é a região sintética com a soma de todas as UFs
const NationalRegion = "BR"

// CompositeKeySeparator separa código e descrição na chave composta
const CompositeKeySeparator = " - "

// GroupCodeLength é o tamanho do prefixo do código que identifica o grupo
const GroupCodeLength = 4

// QuotationRecord é uma linha da tabela de controle de cotações (formato largo)
type QuotationRecord struct {
	UF          string   `json:"uf"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Values      []string `json:"values"` // Alinhado com WideTable.Months, valor bruto da planilha
}

// WideTable é a tabela de cotações com uma coluna por mês (MM/YYYY)
type WideTable struct {
	Months  []string          `json:"months"`
	Records []QuotationRecord `json:"records"`
}

// Value retorna o valor bruto da coluna informada, ou vazio quando ausente
func (r QuotationRecord) Value(i int) string {
	if i < 0 || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// CompositeKey retorna a chave "código - descrição"
func (r QuotationRecord) CompositeKey() string {
	return BuildCompositeKey(r.Code, r.Description)
}

// Key identifica a linha pelo trio UF, código e descrição
func (r QuotationRecord) Key() RecordKey {
	return RecordKey{UF: r.UF, Code: r.Code, Description: r.Description}
}

// RecordKey é a chave usada nas junções entre tabelas de cotações
type RecordKey struct {
	UF          string
	Code        string
	Description string
}

// MonthIndex retorna a posição da coluna de mês, ou -1
func (t *WideTable) MonthIndex(month string) int {
	for i, m := range t.Months {
		if m == month {
			return i
		}
	}
	return -1
}

// IsEmpty indica se a tabela não possui linhas
func (t *WideTable) IsEmpty() bool {
	return t == nil || len(t.Records) == 0
}

// LastMonth retorna a última coluna de mês (data de referência padrão)
func (t *WideTable) LastMonth() (string, bool) {
	if t == nil || len(t.Months) == 0 {
		return "", false
	}
	return t.Months[len(t.Months)-1], true
}

// LongFormRow é uma linha da tabela no formato longo (UF × item × mês)
type LongFormRow struct {
	UF           string   `json:"uf"`
	Code         string   `json:"code"`
	Description  string   `json:"description"`
	Month        string   `json:"month"`
	Value        *float64 `json:"value"`
	CompositeKey string   `json:"composite_key"`
	Exception    bool     `json:"exception"`
	Service      bool     `json:"service"`
}

// QuantityRow é uma linha da tabela de quantidades preparada para a tabela consolidada
type QuantityRow struct {
	QuotationRecord
	CompositeKey string `json:"composite_key"`
	Group        string `json:"group"`
	Exception    bool   `json:"exception"`
	Service      bool   `json:"service"`
}

// QuantityTable é a tabela de quantidades com chave composta, grupo e marcações
type QuantityTable struct {
	Months []string      `json:"months"`
	Rows   []QuantityRow `json:"rows"`
}

// BuildCompositeKey monta a chave composta "código - descrição"
func BuildCompositeKey(code, description string) string {
	return code + CompositeKeySeparator + description
}

// LeadingCode retorna o segmento de código de uma chave composta
func LeadingCode(compositeKey string) string {
	code, _, _ := strings.Cut(compositeKey, CompositeKeySeparator)
	return code
}

// GroupOf retorna os primeiros caracteres do código, que identificam o grupo
func GroupOf(code string) string {
	runes := []rune(code)
	if len(runes) <= GroupCodeLength {
		return code
	}
	return string(runes[:GroupCodeLength])
}

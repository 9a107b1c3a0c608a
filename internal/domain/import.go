package domain

import "time"

// ImportKind identifica a base importada
type ImportKind string

const (
	ImportKindQuotations     ImportKind = "cotacoes"
	ImportKindReferenceLists ImportKind = "excecoes"
	ImportKindWeights        ImportKind = "ponderacoes"
)

// IsValid indica se o tipo de importação é conhecido
func (k ImportKind) IsValid() bool {
	return k == ImportKindQuotations || k == ImportKindReferenceLists || k == ImportKindWeights
}

// ImportRecord registra uma planilha importada
type ImportRecord struct {
	ID        string     `json:"id"`
	Kind      ImportKind `json:"kind"`
	FileName  string     `json:"file_name"`
	Hash      string     `json:"hash"` // sha256 do arquivo
	Rows      int        `json:"rows"`
	NewMonths []string   `json:"new_months,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReferenceLists são as listas de itens de exceção e de serviços
type ReferenceLists struct {
	Exceptions []string `json:"exceptions"`
	Services   []string `json:"services"`
}

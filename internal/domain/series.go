package domain

// Band é uma faixa horizontal sombreada do gráfico de série histórica
type Band struct {
	Tier  Tier    `json:"tier"`
	Label string  `json:"label"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// SeriesLine é a série de uma UF e um item
type SeriesLine struct {
	UF     string     `json:"uf"`
	Item   string     `json:"item"`
	Points []*float64 `json:"points"` // Alinhado com TimeSeries.Dates
}

// TimeSeries é a série histórica pivotada (índice = mês, colunas = UF × item)
type TimeSeries struct {
	Dates    []string     `json:"dates"`
	Lines    []SeriesLine `json:"lines"`
	Bands    []Band       `json:"bands"`
	MaxValue float64      `json:"max_value"`
}

// SeriesFilters são os filtros da série histórica
type SeriesFilters struct {
	Regions []string `json:"regions"`
	Groups  []string `json:"groups"`
	Items   []string `json:"items"`
}

// FilterOptions são as opções disponíveis para os filtros da interface
type FilterOptions struct {
	Regions        []string `json:"regions"`
	SeriesRegions  []string `json:"series_regions"`
	Items          []string `json:"items"`
	Groups         []string `json:"groups"`
	Months         []string `json:"months"`
	ReferenceMonth string   `json:"reference_month"`
}

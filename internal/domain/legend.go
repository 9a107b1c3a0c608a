package domain

// Cores usadas na legenda, no gráfico e na exportação
const (
	ColorSuperCritical = "#ff4d4d"
	ColorCritical      = "#ffa500"
	ColorAcceptable    = "#FCDA51"
	ColorSufficient    = "#66cc66"
	ColorException     = "#808080"
	ColorService       = "#3C5096"
)

var tierColors = map[Tier]string{
	TierSuperCritical: ColorSuperCritical,
	TierCritical:      ColorCritical,
	TierAcceptable:    ColorAcceptable,
	TierSufficient:    ColorSufficient,
	TierException:     ColorException,
	TierService:       ColorService,
}

// ColorOf retorna a cor de fundo da criticidade
func ColorOf(tier Tier) (string, bool) {
	c, ok := tierColors[tier]
	return c, ok
}

type LegendEntry struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

type Legend struct {
	Criticalities []LegendEntry `json:"criticalities"`
	Priorities    []LegendEntry `json:"priorities"`
}

// DefaultLegend retorna a legenda de cores e de prioridades
func DefaultLegend() Legend {
	return Legend{
		Criticalities: []LegendEntry{
			{Label: string(TierSuperCritical), Description: "Qtde. de cotações ≤ 25", Color: ColorSuperCritical},
			{Label: string(TierCritical), Description: "Qtde. de cotações entre 26 e 55", Color: ColorCritical},
			{Label: string(TierAcceptable), Description: "Qtde. de cotações entre 56 e 100", Color: ColorAcceptable},
			{Label: string(TierSufficient), Description: "Qtde. de cotações > 100", Color: ColorSufficient},
			{Label: string(TierException), Description: "Itens que não entram no cálculo do IPC", Color: ColorException},
			{Label: string(TierService), Description: "Itens de serviços (criticidade por quantidade diferente dos demais itens)", Color: ColorService},
		},
		Priorities: []LegendEntry{
			{Label: string(Priority1), Description: "Ponderação acima de 1,00%"},
			{Label: string(Priority2), Description: "Ponderação entre 0,40% e 1,00%"},
			{Label: string(Priority3), Description: "Ponderação ≤ 0,40%"},
		},
	}
}

// ChartBands retorna as faixas do gráfico de série histórica até maxValue
func ChartBands(maxValue float64) []Band {
	top := maxValue
	if top < AcceptableLimit {
		top = AcceptableLimit
	}
	return []Band{
		{Tier: TierSuperCritical, Label: "Super Crítico (<=25)", From: 0, To: SuperCriticalLimit, Color: ColorSuperCritical},
		{Tier: TierCritical, Label: "Crítico (26-55)", From: SuperCriticalLimit, To: CriticalLimit, Color: ColorCritical},
		{Tier: TierAcceptable, Label: "Aceitável (56-100)", From: CriticalLimit, To: AcceptableLimit, Color: ColorAcceptable},
		{Tier: TierSufficient, Label: "Suficiente (>100)", From: AcceptableLimit, To: top, Color: ColorSufficient},
	}
}

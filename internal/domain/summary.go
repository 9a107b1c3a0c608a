package domain

import "time"

// ComparativeSummary é a contagem de itens por faixa de criticidade de uma UF em um mês
type ComparativeSummary struct {
	UF            string     `json:"uf"`
	Month         string     `json:"month"`
	MonthDate     *time.Time `json:"month_date"` // nil quando o mês não pôde ser interpretado
	Total         int        `json:"total"`
	SuperCritical int        `json:"super_critico"`
	Critical      int        `json:"critico"`
	Acceptable    int        `json:"aceitavel"`
	Sufficient    int        `json:"suficiente"`
	Exception     int        `json:"excecao"`
	Services      int        `json:"servicos"`
}

// CountFor retorna a contagem de uma faixa
func (s ComparativeSummary) CountFor(tier Tier) int {
	switch tier {
	case TierSuperCritical:
		return s.SuperCritical
	case TierCritical:
		return s.Critical
	case TierAcceptable:
		return s.Acceptable
	case TierSufficient:
		return s.Sufficient
	case TierException:
		return s.Exception
	case TierService:
		return s.Services
	}
	return 0
}

// StatusView é a visão de status por quantidade do mês mais recente
type StatusView struct {
	Month string               `json:"month"`
	Rows  []ComparativeSummary `json:"rows"`
}

package domain

import "math"

// Tier representa a criticidade de um item pela quantidade de cotações recebidas
type Tier string

const (
	TierSuperCritical Tier = "SuperCrítico"
	TierCritical      Tier = "Crítico"
	TierAcceptable    Tier = "Aceitável"
	TierSufficient    Tier = "Suficiente"

	// Criticidades fora da faixa numérica, aplicadas antes do classificador
	TierException Tier = "Exceção"
	TierService   Tier = "Serviços"
)

// Limites superiores (inclusivos) de cada faixa de criticidade
const (
	SuperCriticalLimit = 25.0
	CriticalLimit      = 55.0
	AcceptableLimit    = 100.0

	// MinimumCoverage é a quantidade de cotações considerada cobertura mínima
	MinimumCoverage = 100.0
)

// NumericTiers lista as faixas numéricas em ordem crescente de severidade
var NumericTiers = []Tier{TierSufficient, TierAcceptable, TierCritical, TierSuperCritical}

var severityByTier = map[Tier]int{
	TierSuperCritical: 4,
	TierCritical:      3,
	TierAcceptable:    2,
	TierSufficient:    1,
	TierException:     0,
}

// Classify retorna a criticidade de uma quantidade de cotações.
// Valores ausentes ou não numéricos não possuem criticidade.
func Classify(value *float64) (Tier, bool) {
	if value == nil || math.IsNaN(*value) {
		return "", false
	}

	switch v := *value; {
	case v <= SuperCriticalLimit:
		return TierSuperCritical, true
	case v <= CriticalLimit:
		return TierCritical, true
	case v <= AcceptableLimit:
		return TierAcceptable, true
	default:
		return TierSufficient, true
	}
}

// SeverityRank retorna o nível de severidade usado na ordenação.
// Exceção tem o menor nível e fica no fim de uma ordenação decrescente.
func SeverityRank(tier Tier) (int, bool) {
	rank, ok := severityByTier[tier]
	return rank, ok
}

// IsValid indica se a criticidade é conhecida (inclui Exceção e Serviços)
func (t Tier) IsValid() bool {
	switch t {
	case TierSuperCritical, TierCritical, TierAcceptable, TierSufficient, TierException, TierService:
		return true
	}
	return false
}

// Priority representa a prioridade de um item pela sua ponderação no índice
type Priority string

const (
	Priority1 Priority = "Prioridade 1"
	Priority2 Priority = "Prioridade 2"
	Priority3 Priority = "Prioridade 3"
)

// Limites (estritos) de ponderação para as prioridades
const (
	Priority1Threshold = 1.0
	Priority2Threshold = 0.4
)

// ClassifyPriority retorna a prioridade de um item a partir da sua ponderação
func ClassifyPriority(weight *float64) (Priority, bool) {
	if weight == nil || math.IsNaN(*weight) {
		return "", false
	}

	switch w := *weight; {
	case w > Priority1Threshold:
		return Priority1, true
	case w > Priority2Threshold:
		return Priority2, true
	default:
		return Priority3, true
	}
}

// IsValid indica se a prioridade é conhecida
func (p Priority) IsValid() bool {
	return p == Priority1 || p == Priority2 || p == Priority3
}

// Shortfall retorna quantas cotações faltam para a cobertura mínima
func Shortfall(quantity *float64) (float64, bool) {
	if quantity == nil || math.IsNaN(*quantity) {
		return 0, false
	}
	return math.Max(0, MinimumCoverage-*quantity), true
}

package monitoring

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/transforming"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tables são as quatro bases persistidas
type Tables struct {
	Quotations *domain.WideTable      `json:"quotations"`
	Exceptions []string               `json:"exceptions"`
	Services   []string               `json:"services"`
	Weights    *domain.RawWeightTable `json:"weights"`
}

// snapshot é a cópia imutável das bases e das tabelas derivadas delas. Uma
// importação cria um snapshot novo; quem já tem a referência continua com o antigo.
type snapshot struct {
	fingerprint string
	tables      Tables

	exceptions domain.ReferenceSet
	services   domain.ReferenceSet

	longForm     *transforming.LongForm
	quantities   *domain.QuantityTable
	exceptionMap map[string]bool
	serviceMap   map[string]bool
	weights      *domain.WeightTable
}

func newSnapshot(tables Tables) (*snapshot, error) {
	if tables.Quotations == nil {
		tables.Quotations = &domain.WideTable{}
	}
	if tables.Weights == nil {
		tables.Weights = &domain.RawWeightTable{}
	}

	fingerprint, err := fingerprintOf(tables)
	if err != nil {
		return nil, err
	}

	s := &snapshot{
		fingerprint: fingerprint,
		tables:      tables,
		exceptions:  domain.NewReferenceSet(tables.Exceptions),
		services:    domain.NewReferenceSet(tables.Services),
	}

	s.longForm = transforming.ToLongForm(tables.Quotations, s.exceptions, s.services)
	s.quantities = transforming.PrepareQuantityTable(tables.Quotations, s.exceptions, s.services)
	s.exceptionMap, s.serviceMap = transforming.FlagMaps(s.quantities)
	s.weights = transforming.ProcessWeights(tables.Weights)

	return s, nil
}

// with retorna um snapshot novo com as bases alteradas por fn
func (s *snapshot) with(fn func(t *Tables)) (*snapshot, error) {
	tables := s.tables
	fn(&tables)
	return newSnapshot(tables)
}

func (s *snapshot) referenceMonth(requested string) (string, bool) {
	if requested != "" {
		return requested, true
	}
	return s.tables.Quotations.LastMonth()
}

func (s *snapshot) hasData() bool {
	return !s.tables.Quotations.IsEmpty()
}

// fingerprintOf identifica o conteúdo das bases; compõe as chaves do cache
func fingerprintOf(tables Tables) (string, error) {
	data, err := json.Marshal(tables)
	if err != nil {
		return "", err
	}
	return utils.HashBytes(data)[:16], nil
}

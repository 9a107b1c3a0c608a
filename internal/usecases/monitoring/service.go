// Package monitoring mantém o snapshot das bases de cotações e ponderações e serve
// as visões calculadas a partir dele (status, histórico, tabela consolidada, série).
package monitoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/cache"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/repository"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/aggregating"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/consolidating"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

const DefaultCacheTTL = 30 * time.Minute

// Repositories são as bases persistidas usadas pelo serviço
type Repositories struct {
	Quotations     repository.QuotationRepository
	Weights        repository.WeightRepository
	ReferenceLists repository.ReferenceListRepository
	ImportLog      repository.ImportLogRepository
}

type Service struct {
	repos  Repositories
	reader SpreadsheetReader
	writer SpreadsheetWriter
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time

	mu   sync.RWMutex
	snap *snapshot

	// serializa as importações
	importMu sync.Mutex
}

func NewService(
	repos Repositories,
	reader SpreadsheetReader,
	writer SpreadsheetWriter,
	viewCache cache.Cache,
	ttl time.Duration,
) *Service {
	if viewCache == nil {
		viewCache = cache.NewMemory()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	empty, _ := newSnapshot(Tables{})

	return &Service{
		repos:  repos,
		reader: reader,
		writer: writer,
		cache:  viewCache,
		ttl:    ttl,
		now:    time.Now,
		snap:   empty,
	}
}

// Load lê as quatro bases do banco em paralelo e troca o snapshot
func (s *Service) Load(ctx context.Context) error {
	var tables Tables

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.repos.Quotations.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("erro ao carregar cotações: %w", err)
		}
		tables.Quotations = t
		return nil
	})
	g.Go(func() error {
		e, err := s.repos.ReferenceLists.GetExceptions(gctx)
		if err != nil {
			return fmt.Errorf("erro ao carregar exceções: %w", err)
		}
		tables.Exceptions = e
		return nil
	})
	g.Go(func() error {
		sv, err := s.repos.ReferenceLists.GetServices(gctx)
		if err != nil {
			return fmt.Errorf("erro ao carregar serviços: %w", err)
		}
		tables.Services = sv
		return nil
	})
	g.Go(func() error {
		w, err := s.repos.Weights.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("erro ao carregar ponderações: %w", err)
		}
		tables.Weights = w
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	snap, err := newSnapshot(tables)
	if err != nil {
		return err
	}
	s.swap(ctx, snap)

	log.ForContext(ctx).WithFields(log.Fields{
		"fingerprint": snap.fingerprint,
		"rows":        len(tables.Quotations.Records),
		"months":      len(tables.Quotations.Months),
	}).Info("monitoring: bases carregadas")
	return nil
}

func (s *Service) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// swap troca o snapshot. As chaves do cache levam a impressão digital do
// snapshot, então as do anterior não são mais lidas e o cache em memória é esvaziado.
func (s *Service) swap(ctx context.Context, snap *snapshot) {
	s.mu.Lock()
	previous := s.snap
	s.snap = snap
	s.mu.Unlock()

	if previous == nil || previous.fingerprint == snap.fingerprint {
		return
	}
	if flusher, ok := s.cache.(cache.Flusher); ok {
		if err := flusher.Flush(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("monitoring: erro ao esvaziar cache")
		}
	}
}

// Fingerprint identifica o snapshot atual
func (s *Service) Fingerprint() string {
	return s.current().fingerprint
}

func cacheKey(snap *snapshot, view string, params ...interface{}) string {
	key := snap.fingerprint + ":" + view
	if len(params) > 0 {
		data, err := json.Marshal(params)
		if err == nil {
			key += ":" + string(data)
		}
	}
	return key
}

// Status retorna o resumo comparativo do mês mais recente
func (s *Service) Status(ctx context.Context) (domain.StatusView, error) {
	snap := s.current()
	if !snap.hasData() {
		return domain.StatusView{}, ErrNoData
	}

	return cache.FindOrCompute(ctx, s.cache, cacheKey(snap, "status"), s.ttl, func(ctx context.Context) (domain.StatusView, error) {
		return aggregating.MostRecent(aggregating.Aggregate(snap.longForm.Rows)), nil
	})
}

// History retorna o resumo comparativo de todos os meses
func (s *Service) History(ctx context.Context) ([]domain.ComparativeSummary, error) {
	snap := s.current()
	if !snap.hasData() {
		return nil, ErrNoData
	}

	return cache.FindOrCompute(ctx, s.cache, cacheKey(snap, "history"), s.ttl, func(ctx context.Context) ([]domain.ComparativeSummary, error) {
		return aggregating.Aggregate(snap.longForm.Rows), nil
	})
}

func (s *Service) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	snap := s.current()

	return cache.FindOrCompute(ctx, s.cache, cacheKey(snap, "filters"), s.ttl, func(ctx context.Context) (domain.FilterOptions, error) {
		return consolidating.BuildFilterOptions(snap.quantities), nil
	})
}

// Consolidated monta a tabela consolidada; mês vazio usa o último mês da base
func (s *Service) Consolidated(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) (*domain.ConsolidatedView, error) {
	snap := s.current()
	return s.consolidated(ctx, snap, referenceMonth, filters)
}

func (s *Service) consolidated(ctx context.Context, snap *snapshot, referenceMonth string, filters domain.ConsolidatedFilters) (*domain.ConsolidatedView, error) {
	if !snap.hasData() {
		return nil, ErrNoData
	}
	month, _ := snap.referenceMonth(referenceMonth)

	key := cacheKey(snap, "consolidated", month, filters)
	view, err := cache.FindOrCompute(ctx, s.cache, key, s.ttl, func(ctx context.Context) (*domain.ConsolidatedView, error) {
		return consolidating.BuildConsolidatedView(snap.quantities, snap.weights, month, filters, snap.exceptionMap, snap.serviceMap)
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("month", month).Warn("monitoring: erro ao montar tabela consolidada")
		return nil, err
	}
	return view, nil
}

// Statistics calcula os quartis por UF do pivot de quantidades filtrado
func (s *Service) Statistics(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) ([]domain.RegionStatistics, error) {
	snap := s.current()
	if !snap.hasData() {
		return nil, ErrNoData
	}
	month, _ := snap.referenceMonth(referenceMonth)

	key := cacheKey(snap, "statistics", month, filters)
	return cache.FindOrCompute(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]domain.RegionStatistics, error) {
		pivot, err := consolidating.BuildQuantityCrossTab(consolidating.FilterQuantities(snap.quantities, filters, month), month)
		if err != nil {
			return nil, err
		}
		return aggregating.ComputeStatistics(pivot, snap.exceptionMap), nil
	})
}

func (s *Service) Series(ctx context.Context, filters domain.SeriesFilters) (*domain.TimeSeries, error) {
	snap := s.current()
	if !snap.hasData() {
		return nil, ErrNoData
	}

	return cache.FindOrCompute(ctx, s.cache, cacheKey(snap, "series", filters), s.ttl, func(ctx context.Context) (*domain.TimeSeries, error) {
		return consolidating.BuildTimeSeries(snap.longForm.Rows, filters)
	})
}

// Export gera o xlsx da tabela consolidada
func (s *Service) Export(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) ([]byte, error) {
	view, err := s.Consolidated(ctx, referenceMonth, filters)
	if err != nil {
		return nil, err
	}

	data, err := s.writer.WriteConsolidated(view)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return data, nil
}

func (s *Service) Legend() domain.Legend {
	return domain.DefaultLegend()
}

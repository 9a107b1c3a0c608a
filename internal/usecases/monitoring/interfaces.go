package monitoring

import (
	"context"
	"io"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SpreadsheetReader lê as planilhas enviadas pelos analistas
type SpreadsheetReader interface {
	ReadQuotations(src io.Reader) (*domain.WideTable, error)
	ReadReferenceLists(src io.Reader) (*domain.ReferenceLists, error)
	ReadWeights(src io.Reader) (*domain.RawWeightTable, error)
}

// SpreadsheetWriter gera a planilha da tabela consolidada
type SpreadsheetWriter interface {
	WriteConsolidated(view *domain.ConsolidatedView) ([]byte, error)
}

// Viewer expõe as visões calculadas a partir do snapshot das bases
type Viewer interface {
	Status(ctx context.Context) (domain.StatusView, error)
	History(ctx context.Context) ([]domain.ComparativeSummary, error)
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)
	Consolidated(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) (*domain.ConsolidatedView, error)
	Statistics(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) ([]domain.RegionStatistics, error)
	Series(ctx context.Context, filters domain.SeriesFilters) (*domain.TimeSeries, error)
	Export(ctx context.Context, referenceMonth string, filters domain.ConsolidatedFilters) ([]byte, error)
	Legend() domain.Legend
	Fingerprint() string
}

// Importer atualiza as bases a partir das planilhas
type Importer interface {
	Import(ctx context.Context, kind domain.ImportKind, fileName string, data []byte) (*domain.ImportRecord, error)
	ImportLog(ctx context.Context, limit int) ([]*domain.ImportRecord, error)
}

// Monitor reúne as visões e as importações
type Monitor interface {
	Viewer
	Importer
}

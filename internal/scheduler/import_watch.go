package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ipc-quotation-monitor/internal/config"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
)

// ImportWatchConfig representa a configuração do agendador de importação da caixa de entrada
type ImportWatchConfig struct {
	InboxDir     string
	CronSchedule string
	SyncEnabled  bool
}

// ImportWatchSummary é o resultado de uma varredura da caixa de entrada
type ImportWatchSummary struct {
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
}

// ImportWatchService importa as planilhas deixadas na caixa de entrada. O nome do arquivo
// define a base (cotacoes*, excecoes*, ponderacoes*); arquivos já importados são ignorados
// pelo histórico de importações, então nada é movido ou apagado.
type ImportWatchService struct {
	scheduler *gocron.Scheduler
	config    ImportWatchConfig
	importer  monitoring.Importer
	ctx       context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         ImportWatchSummary
}

func NewImportWatchService(importer monitoring.Importer, appConfig *config.Config) *ImportWatchService {
	watchConfig := ImportWatchConfig{
		InboxDir:     appConfig.ImportWatch.InboxDir,
		CronSchedule: appConfig.ImportWatch.CronSchedule,
		SyncEnabled:  appConfig.ImportWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"inbox_dir":     watchConfig.InboxDir,
		"cron_schedule": watchConfig.CronSchedule,
		"sync_enabled":  watchConfig.SyncEnabled,
	}).Info("Configuração do agendador de importação carregada")

	return &ImportWatchService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    watchConfig,
		importer:  importer,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *ImportWatchService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Importação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importação da caixa de entrada")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if s.tryStart() {
			s.run()
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação da caixa de entrada: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de importação da caixa de entrada")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma varredura; retorna false se já houver uma em andamento
func (s *ImportWatchService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Importação da caixa de entrada já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando importação manual da caixa de entrada")
	go s.run()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ImportWatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"inbox_dir":              s.config.InboxDir,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}

func (s *ImportWatchService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ImportWatchService) run() {
	summary := s.syncInbox(s.ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSummary = summary
	s.syncMutex.Unlock()
}

// syncInbox importa os arquivos reconhecidos da caixa de entrada, um por vez
func (s *ImportWatchService) syncInbox(ctx context.Context) ImportWatchSummary {
	startTime := time.Now()
	summary := ImportWatchSummary{}

	entries, err := os.ReadDir(s.config.InboxDir)
	if err != nil {
		logrus.WithError(err).WithField("inbox_dir", s.config.InboxDir).Error("Erro ao ler a caixa de entrada")
		return summary
	}

	files := make([]inboxFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind, ok := KindForFile(entry.Name())
		if !ok {
			continue
		}
		files = append(files, inboxFile{name: entry.Name(), kind: kind})
	}
	sortInbox(files)

	for _, file := range files {
		if ctx.Err() != nil {
			logrus.Info("Importação da caixa de entrada interrompida")
			break
		}

		logger := logrus.WithFields(logrus.Fields{"file": file.name, "kind": file.kind})

		data, err := os.ReadFile(filepath.Join(s.config.InboxDir, file.name))
		if err != nil {
			logger.WithError(err).Error("Erro ao ler planilha da caixa de entrada")
			summary.Failed = append(summary.Failed, file.name)
			continue
		}

		_, err = s.importer.Import(ctx, file.kind, file.name, data)
		switch {
		case errors.Is(err, monitoring.ErrAlreadyImported):
			summary.Skipped = append(summary.Skipped, file.name)
		case err != nil:
			logger.WithError(err).Error("Erro ao importar planilha da caixa de entrada")
			summary.Failed = append(summary.Failed, file.name)
		default:
			summary.Imported = append(summary.Imported, file.name)
		}
	}

	logrus.WithFields(logrus.Fields{
		"imported": len(summary.Imported),
		"skipped":  len(summary.Skipped),
		"failed":   len(summary.Failed),
		"duration": time.Since(startTime).String(),
	}).Info("Importação da caixa de entrada concluída")

	return summary
}

type inboxFile struct {
	name string
	kind domain.ImportKind
}

// Listas de referência e ponderações primeiro, para que as cotações já entrem com as marcações
var kindOrder = map[domain.ImportKind]int{
	domain.ImportKindReferenceLists: 0,
	domain.ImportKindWeights:        1,
	domain.ImportKindQuotations:     2,
}

func sortInbox(files []inboxFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].kind != files[j].kind {
			return kindOrder[files[i].kind] < kindOrder[files[j].kind]
		}
		return files[i].name < files[j].name
	})
}

// KindForFile identifica a base pelo prefixo do nome do arquivo xlsx
func KindForFile(name string) (domain.ImportKind, bool) {
	lower := strings.ToLower(name)
	if filepath.Ext(lower) != ".xlsx" || strings.HasPrefix(lower, "~$") {
		return "", false
	}

	for _, kind := range []domain.ImportKind{
		domain.ImportKindQuotations,
		domain.ImportKindReferenceLists,
		domain.ImportKindWeights,
	} {
		if strings.HasPrefix(lower, string(kind)) {
			return kind, true
		}
	}
	return "", false
}

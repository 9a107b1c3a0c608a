package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/cache"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/repository"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/spreadsheet"
	"github.com/vfg2006/ipc-quotation-monitor/internal/api"
	"github.com/vfg2006/ipc-quotation-monitor/internal/config"
	"github.com/vfg2006/ipc-quotation-monitor/internal/scheduler"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)

	repos := monitoring.Repositories{
		Quotations:     repository.NewQuotationRepository(conn),
		Weights:        repository.NewWeightRepository(conn),
		ReferenceLists: repository.NewReferenceListRepository(conn),
		ImportLog:      repository.NewImportLogRepository(conn),
	}

	reader := spreadsheet.NewReader(spreadsheet.Options{
		QuotationSheets:   cfg.Import.QuotationSheets,
		QuotationSkipRows: cfg.Import.QuotationSkipRows,
		QuotationMinYear:  cfg.Import.QuotationMinYear,
	})

	viewCache := newViewCache(ctx, cfg.Cache)

	monitor := monitoring.NewService(repos, reader, spreadsheet.NewWriter(), viewCache, cfg.Cache.TTL)
	if err := monitor.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as bases do banco")
	}

	authenticator := authenticating.NewService(cfg)

	importWatchService := scheduler.NewImportWatchService(monitor, cfg)
	if err := importWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação da caixa de entrada")
	} else {
		logrus.Info("Agendador de importação da caixa de entrada iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		monitor,
		authenticator,
		importWatchService,
		conn.Close,
		viewCache.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource usa o diretório do main como diretório de trabalho, para achar o .env
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar o diretório de trabalho")
	}
}

// dbconn abre a conexão e cria as tabelas que faltarem
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

// newViewCache usa Redis quando o endereço é configurado; sem ele, ou se o Redis
// não responder, as visões ficam em memória
func newViewCache(ctx context.Context, cfg config.Cache) cache.Cache {
	if cfg.RedisAddress == "" {
		return cache.NewMemory()
	}

	redisCache, err := cache.NewRedis(ctx,
		cache.WithAddress(cfg.RedisAddress),
		cache.WithPassword(cfg.RedisPassword),
		cache.WithDB(cfg.RedisDB),
	)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		return cache.NewMemory()
	}

	logrus.WithField("address", cfg.RedisAddress).Info("Cache das visões no Redis")
	return redisCache
}

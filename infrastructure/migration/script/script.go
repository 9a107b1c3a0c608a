// Script de carga inicial: cria as tabelas, importa as planilhas informadas e,
// se pedido, gera um token de acesso para as rotas de atualização.
//
//	go run ./infrastructure/migration/script -excecoes excecoes.xlsx -ponderacoes ponderacoes.xlsx -cotacoes cotacoes.xlsx
//	go run ./infrastructure/migration/script -token analista.admin -role admin -ttl 720h
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/cache"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/repository"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/spreadsheet"
	"github.com/vfg2006/ipc-quotation-monitor/internal/config"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

type options struct {
	quotations     string
	referenceLists string
	weights        string
	tokenUser      string
	tokenRole      string
	tokenTTL       time.Duration
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.quotations, "cotacoes", "", "planilha de controle de cotações")
	flag.StringVar(&opts.referenceLists, "excecoes", "", "planilha de itens de exceção e serviços")
	flag.StringVar(&opts.weights, "ponderacoes", "", "planilha de ponderações por capital")
	flag.StringVar(&opts.tokenUser, "token", "", "gera um token de acesso para o usuário informado")
	flag.StringVar(&opts.tokenRole, "role", domain.RoleAnalyst, "perfil do token (admin ou analista)")
	flag.DurationVar(&opts.tokenTTL, "ttl", 24*time.Hour, "validade do token")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	if opts.tokenUser != "" {
		token, err := authenticating.NewService(cfg).GenerateToken(opts.tokenUser, opts.tokenRole, opts.tokenTTL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token")
		}
		fmt.Println(token)
	}

	// listas e ponderações antes das cotações
	files := []struct {
		kind domain.ImportKind
		path string
	}{
		{domain.ImportKindReferenceLists, opts.referenceLists},
		{domain.ImportKindWeights, opts.weights},
		{domain.ImportKindQuotations, opts.quotations},
	}

	pending := 0
	for _, file := range files {
		if file.path != "" {
			pending++
		}
	}
	if pending == 0 && opts.tokenUser != "" {
		return
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}
	logrus.WithField("driver", conn.Driver()).Info("Tabelas criadas")

	service := monitoring.NewService(
		monitoring.Repositories{
			Quotations:     repository.NewQuotationRepository(conn),
			Weights:        repository.NewWeightRepository(conn),
			ReferenceLists: repository.NewReferenceListRepository(conn),
			ImportLog:      repository.NewImportLogRepository(conn),
		},
		spreadsheet.NewReader(spreadsheet.Options{
			QuotationSheets:   cfg.Import.QuotationSheets,
			QuotationSkipRows: cfg.Import.QuotationSkipRows,
			QuotationMinYear:  cfg.Import.QuotationMinYear,
		}),
		spreadsheet.NewWriter(),
		cache.NewMemory(),
		0,
	)
	if err := service.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as bases")
	}

	for _, file := range files {
		if file.path == "" {
			continue
		}

		logger := logrus.WithFields(logrus.Fields{"kind": file.kind, "file": file.path})

		data, err := os.ReadFile(file.path)
		if err != nil {
			logger.WithError(err).Fatal("Erro ao ler planilha")
		}

		record, err := service.Import(ctx, file.kind, filepath.Base(file.path), data)
		if errors.Is(err, monitoring.ErrAlreadyImported) {
			logger.Info("Planilha já importada, ignorando")
			continue
		}
		if err != nil {
			logger.WithError(err).Fatal("Erro ao importar planilha")
		}

		logger.WithFields(logrus.Fields{
			"rows":       record.Rows,
			"new_months": record.NewMonths,
		}).Info("Planilha importada")
	}
}

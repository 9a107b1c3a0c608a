package handler

import (
	"net/http"

	"github.com/vfg2006/ipc-quotation-monitor/internal/api/handler/router"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/middleware"
)

func Healthcheck(service monitoring.Viewer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

// Dashboard retorna as rotas de leitura das visões; são públicas
func Dashboard(service monitoring.Viewer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/legend",
			Method:  http.MethodGet,
			Handler: GetLegend(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: GetStatus(service),
		},
		{
			Path:    "/v1/status/history",
			Method:  http.MethodGet,
			Handler: GetStatusHistory(service),
		},
		{
			Path:    "/v1/consolidated",
			Method:  http.MethodGet,
			Handler: GetConsolidated(service),
		},
		{
			Path:    "/v1/consolidated/statistics",
			Method:  http.MethodGet,
			Handler: GetConsolidatedStatistics(service),
		},
		{
			Path:    "/v1/consolidated/export",
			Method:  http.MethodGet,
			Handler: ExportConsolidated(service),
		},
		{
			Path:    "/v1/series",
			Method:  http.MethodGet,
			Handler: GetSeries(service),
		},
	}
}

// Uploads retorna as rotas de atualização das bases
func Uploads(service monitoring.Importer, maxUploadSizeMB int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/uploads/quotations",
			Method:      http.MethodPost,
			Handler:     UploadSpreadsheet(service, domain.ImportKindQuotations, maxUploadSizeMB),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/uploads/reference-lists",
			Method:      http.MethodPost,
			Handler:     UploadSpreadsheet(service, domain.ImportKindReferenceLists, maxUploadSizeMB),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/uploads/weights",
			Method:      http.MethodPost,
			Handler:     UploadSpreadsheet(service, domain.ImportKindWeights, maxUploadSizeMB),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodGet,
			Handler:     ListImports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/" + CronJobTypeImport + "/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, CronJobTypeImport),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func GetLegend(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Legend())
	})
}

// GetFilterOptions retorna as UFs, itens, grupos e meses disponíveis para os filtros
func GetFilterOptions(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, options)
	})
}

// GetStatus retorna o resumo comparativo do mês mais recente
func GetStatus(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Status(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, status)
	})
}

func GetStatusHistory(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		history, err := service.History(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, history)
	})
}

// GetConsolidated retorna a tabela consolidada (quantidade × ponderação) de um mês
func GetConsolidated(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseConsolidatedQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", validationDetails(err))
			return
		}

		view, err := service.Consolidated(r.Context(), query.Month, query.filters())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"month": view.ReferenceMonth,
			"rows":  len(view.Rows),
		}).Debug("consolidated: tabela montada")

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetConsolidatedStatistics(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseConsolidatedQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", validationDetails(err))
			return
		}

		stats, err := service.Statistics(r.Context(), query.Month, query.filters())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	})
}

// ExportConsolidated devolve a tabela consolidada em xlsx
func ExportConsolidated(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseConsolidatedQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", validationDetails(err))
			return
		}

		data, err := service.Export(r.Context(), query.Month, query.filters())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(query.Month)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("export: erro ao enviar planilha")
		}
	})
}

func exportFileName(month string) string {
	if month == "" {
		return "tabela_consolidada.xlsx"
	}
	return "tabela_consolidada_" + strings.ReplaceAll(month, "/", "-") + ".xlsx"
}

// GetSeries retorna a série histórica das UFs e itens (ou grupos) selecionados
func GetSeries(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseSeriesQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma UF e um item ou grupo", validationDetails(err))
			return
		}

		series, err := service.Series(r.Context(), query.filters())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, series)
	})
}

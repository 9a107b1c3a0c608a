package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/consolidating"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros das visões e das importações para o código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		pipelineErr *consolidating.PipelineError
		importErr   *monitoring.ImportError
	)

	switch {
	case errors.Is(err, monitoring.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrNoData, "Nenhuma base de cotações carregada", nil)
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Err.Error(), importErr.Details)
	case consolidating.IsSelectionError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.As(err, &pipelineErr):
		apiErrors.WriteError(w, pipelineErr.Code, pipelineErr.Err.Error(), pipelineErr.Details)
	case consolidating.IsStructuralError(err):
		apiErrors.WriteError(w, apiErrors.ErrStructural, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("handler: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a requisição", nil)
	}
}

package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

const (
	defaultImportLogLimit = 20
	maxImportLogLimit     = 100
)

// UploadSpreadsheet recebe a planilha no campo multipart "file" e atualiza a base do tipo informado
func UploadSpreadsheet(service monitoring.Importer, kind domain.ImportKind, maxUploadSizeMB int64) http.Handler {
	maxBytes := maxUploadSizeMB << 20

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("kind", kind)

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			logger.WithError(err).Warn("upload: formulário inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie a planilha no campo file (até "+strconv.FormatInt(maxUploadSizeMB, 10)+" MB)", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file é obrigatório", nil)
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A planilha deve estar no formato .xlsx", header.Filename)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("upload: erro ao ler arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo", nil)
			return
		}

		record, err := service.Import(r.Context(), kind, header.Filename, data)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, record)
	})
}

// ListImports retorna as últimas importações registradas
func ListImports(service monitoring.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := defaultImportLogLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", raw)
				return
			}
			limit = min(n, maxImportLogLimit)
		}

		records, err := service.ImportLog(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("imports: erro ao listar importações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar importações", nil)
			return
		}
		writeJSON(w, r, http.StatusOK, records)
	})
}

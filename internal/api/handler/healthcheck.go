package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/monitoring"
)

func HealthcheckHandler(service monitoring.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"time":        time.Now().Format(time.RFC3339),
			"fingerprint": service.Fingerprint(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

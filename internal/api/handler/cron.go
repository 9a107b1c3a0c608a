package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeImport = "import"
)

// CronJob é um serviço agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ImportWatchService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.ImportWatchService != nil {
		jobs[CronJobTypeImport] = s.ImportWatchService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		job, ok := services.byType()[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço agendado não disponível", cronType)
			return
		}

		started := job.TriggerManualSync()

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já em andamento"
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		for cronType, job := range services.byType() {
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

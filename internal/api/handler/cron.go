package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/internal/scheduler"
	"github.com/vfg2006/nps-survey-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSummary = "summary"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SummarySyncService *scheduler.SummarySyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSummary, CronJobTypeAll:
			if services.SummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerDisabled, "Serviço de resumos de NPS não disponível", nil)
				return
			}
			services.SummarySyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: summary, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.SummarySyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrSchedulerDisabled, "Serviço de resumos de NPS não disponível", nil)
			return
		}

		status := map[string]any{
			"summary": services.SummarySyncService.Status(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

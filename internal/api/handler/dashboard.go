package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/internal/usecases/reporting"
	"github.com/vfg2006/nps-survey-api/pkg/apiErrors"
)

// GetSummary devolve o agregado NPS, opcionalmente filtrado por campanha via
// query string (?campaign_id=...)
func GetSummary(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := r.URL.Query().Get("campaign_id")

		summary, err := service.Summary(r.Context(), campaignID)
		if err != nil {
			logrus.Error("Error computing summary:", err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao consultar respostas armazenadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ExportResponses devolve as respostas armazenadas como um anexo CSV
func ExportResponses(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportResponses")

		campaignID := r.URL.Query().Get("campaign_id")

		csv, err := service.ExportCSV(r.Context(), campaignID)
		if err != nil {
			logrus.Error("Error exporting responses:", err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao exportar respostas armazenadas", nil)
			return
		}

		filename := fmt.Sprintf("nps-responses-%s.csv", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := w.Write([]byte(csv)); err != nil {
			logrus.WithError(err).Warn("error writing CSV export")
		}
	})
}

package handler

import (
	"net/http"

	"github.com/vfg2006/nps-survey-api/internal/api/handler/router"
	"github.com/vfg2006/nps-survey-api/internal/usecases/campaigning"
	"github.com/vfg2006/nps-survey-api/internal/usecases/reporting"
	"github.com/vfg2006/nps-survey-api/internal/usecases/surveying"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/portable-link",
			Method:  http.MethodGet,
			Handler: GetPortableLink(service),
		},
	}
}

func Surveys(service surveying.SurveyService) []router.Route {
	return []router.Route{
		// Segmento próprio: httprouter não aceita filho estático ("resolve")
		// convivendo com o curinga ":id" na mesma subárvore
		{
			Path:    "/v1/survey-resolutions",
			Method:  http.MethodPost,
			Handler: ResolveSurvey(service),
		},
		{
			Path:    "/v1/surveys/:id/submissions",
			Method:  http.MethodPost,
			Handler: SubmitSurvey(service),
		},
	}
}

func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportResponses(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

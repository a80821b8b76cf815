package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nps-survey-api/internal/api/handler/router"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/internal/usecases/surveying"
)

type surveyServiceStub struct {
	campaign *domain.Campaign
	result   *surveying.SubmissionResult
}

func (s *surveyServiceStub) Resolve(ctx context.Context, rawLocator string) (*domain.Campaign, error) {
	return s.campaign, nil
}

func (s *surveyServiceStub) Submit(ctx context.Context, input surveying.SubmissionInput) (*surveying.SubmissionResult, error) {
	return s.result, nil
}

func TestRouteTablesRegisterWithoutConflict(t *testing.T) {
	// O registro completo da superfície não pode entrar em pânico: o
	// httprouter rejeita combinações de segmento estático com curinga
	assert.NotPanics(t, func() {
		router.New(
			router.WithRoutes(Healthcheck()...),
			router.WithRoutes(Campaigns(nil)...),
			router.WithRoutes(Surveys(nil)...),
			router.WithRoutes(Dashboard(nil)...),
			router.WithRoutes(CronJobs(CronJobServices{})...),
		)
	})
}

func TestSurveyRoutesDispatch(t *testing.T) {
	service := &surveyServiceStub{
		campaign: &domain.Campaign{ID: "abc123", Name: "Pós-venda", IsActive: true},
		result:   &surveying.SubmissionResult{ResponseID: "resp1", Band: domain.BandPromoter},
	}

	rt := router.New(router.WithRoutes(Surveys(service)...))

	t.Run("resolve", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/v1/survey-resolutions", strings.NewReader(`{"locator":"survey/abc123"}`))
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"abc123"`)
	})

	t.Run("submissions", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/v1/surveys/abc123/submissions", strings.NewReader(`{"score":10}`))
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"resp1"`)
	})
}

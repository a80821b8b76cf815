package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/internal/usecases/surveying"
	"github.com/vfg2006/nps-survey-api/pkg/apiErrors"
)

// ResolveRequest carrega o localizador bruto enviado pela página de pesquisa
type ResolveRequest struct {
	Locator string `json:"locator"`
}

// ResolveSurvey resolve o localizador de uma pesquisa para a campanha efetiva
func ResolveSurvey(service surveying.SurveyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request ResolveRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.Resolve(r.Context(), request.Locator)
		if err != nil {
			logrus.Error("Error resolving survey:", err)
			writeSurveyError(w, err, "Erro ao resolver pesquisa")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SubmitSurvey registra uma resposta de pesquisa e devolve o desfecho da
// submissão, incluindo a URL de redirecionamento por faixa quando houver
func SubmitSurvey(service surveying.SurveyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SubmitSurvey")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input surveying.SubmissionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// O ID do caminho prevalece sobre qualquer ID embutido no localizador
		input.CampaignID = id

		result, err := service.Submit(r.Context(), input)
		if err != nil {
			logrus.Error("Error submitting survey response:", err)
			writeSurveyError(w, err, "Erro ao registrar resposta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeSurveyError mapeia erros do caso de uso de pesquisas para a tabela de
// erros da API
func writeSurveyError(w http.ResponseWriter, err error, fallbackMessage string) {
	var surveyErr *surveying.SurveyError
	if errors.As(err, &surveyErr) {
		apiErrors.WriteError(w, surveyErr.Code, surveyErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, surveying.ErrSurveyUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrSurveyUnavailable, "Pesquisa indisponível", nil)

	case errors.Is(err, surveying.ErrScoreRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nota é obrigatória", nil)

	case errors.Is(err, surveying.ErrInvalidScore):
		apiErrors.WriteError(w, apiErrors.ErrInvalidScore, "Nota deve ser um inteiro entre 0 e 10", nil)

	case errors.Is(err, surveying.ErrStorageOperation):
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao acessar o armazenamento de respostas", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

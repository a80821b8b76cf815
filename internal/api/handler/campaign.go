package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/internal/usecases/campaigning"
	"github.com/vfg2006/nps-survey-api/pkg/apiErrors"
)

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeCampaignError(w, err, "Erro ao listar campanhas", "")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			logrus.Error("Error fetching campaign:", err)
			writeCampaignError(w, err, "Erro ao buscar campanha", id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var input campaigning.CampaignInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), input)
		if err != nil {
			logrus.Error("Error creating campaign:", err)
			writeCampaignError(w, err, "Erro ao criar campanha", "")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var input campaigning.CampaignInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.UpdateCampaign(r.Context(), id, input)
		if err != nil {
			logrus.Error("Error updating campaign:", err)
			writeCampaignError(w, err, "Erro ao atualizar campanha", id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCampaign")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			logrus.Error("Error deleting campaign:", err)
			writeCampaignError(w, err, "Erro ao remover campanha", id)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetPortableLink(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		link, err := service.PortableLink(r.Context(), id)
		if err != nil {
			logrus.Error("Error building portable link:", err)
			writeCampaignError(w, err, "Erro ao gerar link portátil", id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]string{"portable_link": link}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeCampaignError mapeia erros do caso de uso de campanhas para a tabela
// de erros da API
func writeCampaignError(w http.ResponseWriter, err error, fallbackMessage, campaignID string) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, campaigning.ErrCampaignIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)

	case errors.Is(err, campaigning.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", map[string]interface{}{
			"campaign_id": campaignID,
		})

	case errors.Is(err, campaigning.ErrCampaignConflict):
		apiErrors.WriteError(w, apiErrors.ErrCampaignConflict, "Campanha já existe com este ID", map[string]interface{}{
			"campaign_id": campaignID,
		})

	case errors.Is(err, campaigning.ErrStorageOperation):
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao acessar o armazenamento de campanhas", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

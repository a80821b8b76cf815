package repository

import (
	"context"

	"github.com/vfg2006/nps-survey-api/infrastructure/storage"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

type ResponseRepository interface {
	List(ctx context.Context) ([]*domain.Response, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.Response, error)
	Prepend(ctx context.Context, response *domain.Response) error
}

type responseRepository struct {
	store storage.Store
}

func NewResponseRepository(store storage.Store) ResponseRepository {
	return &responseRepository{store: store}
}

// List devolve as respostas na ordem persistida (mais recente primeiro)
func (r *responseRepository) List(ctx context.Context) ([]*domain.Response, error) {
	payload := r.store.Get(ctx, storage.KeyResponses, emptyCollection)

	responses := []*domain.Response{}
	if err := json.Unmarshal(payload, &responses); err != nil {
		log.L.WithError(err).Warn("Coleção de respostas ilegível, tratando como vazia")
		return []*domain.Response{}, nil
	}

	return responses, nil
}

// ListByCampaign filtra as respostas de uma campanha, preservando a ordem
func (r *responseRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.Response, error) {
	responses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []*domain.Response{}
	for _, response := range responses {
		if response.CampaignID == campaignID {
			filtered = append(filtered, response)
		}
	}

	return filtered, nil
}

// Prepend insere a resposta no início da coleção. Respostas são imutáveis:
// nunca são editadas nem removidas por este núcleo.
func (r *responseRepository) Prepend(ctx context.Context, response *domain.Response) error {
	responses, err := r.List(ctx)
	if err != nil {
		return err
	}

	responses = append([]*domain.Response{response}, responses...)

	payload, err := json.Marshal(responses)
	if err != nil {
		return err
	}

	return r.store.Set(ctx, storage.KeyResponses, payload)
}

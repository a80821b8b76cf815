// Package repository contém os adaptadores das coleções persistidas sobre o Store
package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/nps-survey-api/infrastructure/storage"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var emptyCollection = []byte("[]")

type CampaignRepository interface {
	List(ctx context.Context) ([]*domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type campaignRepository struct {
	store storage.Store
}

func NewCampaignRepository(store storage.Store) CampaignRepository {
	return &campaignRepository{store: store}
}

// List devolve as campanhas na ordem persistida
func (r *campaignRepository) List(ctx context.Context) ([]*domain.Campaign, error) {
	payload := r.store.Get(ctx, storage.KeyCampaigns, emptyCollection)

	campaigns := []*domain.Campaign{}
	if err := json.Unmarshal(payload, &campaigns); err != nil {
		// Coleção ilegível equivale a coleção vazia (política de fallback na leitura)
		log.L.WithError(err).Warn("Coleção de campanhas ilegível, tratando como vazia")
		return []*domain.Campaign{}, nil
	}

	return campaigns, nil
}

// GetByID devolve a campanha armazenada com o id, ou nil quando não existe
func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	campaigns, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		if campaign.ID == id {
			return campaign, nil
		}
	}

	return nil, nil
}

// Create acrescenta uma campanha nova à coleção
func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	campaigns, err := r.List(ctx)
	if err != nil {
		return err
	}

	campaigns = append(campaigns, campaign)
	return r.persist(ctx, campaigns)
}

// Update substitui o registro inteiro identificado pelo id.
// Retorna false quando nenhuma campanha com o id existe.
func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) (bool, error) {
	campaigns, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i, existing := range campaigns {
		if existing.ID == campaign.ID {
			campaigns[i] = campaign
			return true, r.persist(ctx, campaigns)
		}
	}

	return false, nil
}

// Delete remove a campanha com o id. Retorna false quando não existe.
func (r *campaignRepository) Delete(ctx context.Context, id string) (bool, error) {
	campaigns, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i, existing := range campaigns {
		if existing.ID == id {
			campaigns = append(campaigns[:i], campaigns[i+1:]...)
			return true, r.persist(ctx, campaigns)
		}
	}

	return false, nil
}

func (r *campaignRepository) persist(ctx context.Context, campaigns []*domain.Campaign) error {
	payload, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}

	return r.store.Set(ctx, storage.KeyCampaigns, payload)
}

package campaigning

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vfg2006/nps-survey-api/infrastructure/repository"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

// CampaignInput são os campos editáveis de uma campanha. Campos nil na criação
// mantêm os valores de exemplo da factory padrão.
type CampaignInput struct {
	Name            *string          `json:"name"`
	Audience        *domain.Audience `json:"audience"`
	BrandName       *string          `json:"brand_name"`
	AccentColor     *string          `json:"accent_color"`
	ThankYouMessage *string          `json:"thank_you_message"`
	PromoterURL     *string          `json:"promoter_url"`
	PassiveURL      *string          `json:"passive_url"`
	DetractorURL    *string          `json:"detractor_url"`
	WebhookURL      *string          `json:"webhook_url"`
	IsActive        *bool            `json:"is_active"`
}

type CampaignService interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, input CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, input CampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	PortableLink(ctx context.Context, id string) (string, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	cfg          *config.Config
}

func NewService(campaignRepo repository.CampaignRepository, cfg *config.Config) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		cfg:          cfg,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	return s.campaignRepo.List(ctx)
}

func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, ErrCampaignIDRequired
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	return campaign, nil
}

// CreateCampaign cria uma campanha a partir da factory padrão, sobrepondo os
// campos informados. O ID é sempre gerado aqui, garantindo unicidade local.
func (s *Service) CreateCampaign(ctx context.Context, input CampaignInput) (*domain.Campaign, error) {
	campaign := domain.NewCampaign()
	applyInput(campaign, input)

	// Id já em uso indica colisão do gerador
	existing, err := s.campaignRepo.GetByID(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}
	if existing != nil {
		return nil, ErrCampaignConflict
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaign.ID,
		"name":        campaign.Name,
	}).Info("Campanha criada")

	return campaign, nil
}

// UpdateCampaign substitui o registro inteiro da campanha (replace-by-id)
func (s *Service) UpdateCampaign(ctx context.Context, id string, input CampaignInput) (*domain.Campaign, error) {
	existing, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(existing, input)
	existing.ID = id
	existing.Ephemeral = false

	found, err := s.campaignRepo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}
	if !found {
		return nil, ErrCampaignNotFound
	}

	log.ForContext(ctx).WithField("campaign_id", id).Info("Campanha atualizada")

	return existing, nil
}

// DeleteCampaign remove a campanha definitivamente. Campanhas nunca são
// removidas automaticamente; esta é sempre uma ação do operador.
func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if id == "" {
		return ErrCampaignIDRequired
	}

	found, err := s.campaignRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}
	if !found {
		return ErrCampaignNotFound
	}

	log.ForContext(ctx).WithField("campaign_id", id).Info("Campanha removida")

	return nil
}

// PortableLink monta o link compartilhável que embute a configuração pública da
// campanha: caminho do dashboard + token portátil na chave reservada.
func (s *Service) PortableLink(ctx context.Context, id string) (string, error) {
	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}

	token, err := domain.EncodePortable(campaign)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeCampaign, err)
	}

	base := strings.TrimSuffix(s.cfg.App.BaseURL, "/")

	return fmt.Sprintf(
		"%s/#/survey/%s?%s=%s",
		base,
		url.PathEscape(campaign.ID),
		domain.PortableTokenParam,
		url.QueryEscape(token),
	), nil
}

func applyInput(campaign *domain.Campaign, input CampaignInput) {
	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Audience != nil {
		campaign.Audience = *input.Audience
	}
	if input.BrandName != nil {
		campaign.BrandName = *input.BrandName
	}
	if input.AccentColor != nil {
		campaign.AccentColor = *input.AccentColor
	}
	if input.ThankYouMessage != nil {
		campaign.ThankYouMessage = *input.ThankYouMessage
	}
	if input.PromoterURL != nil {
		campaign.PromoterURL = *input.PromoterURL
	}
	if input.PassiveURL != nil {
		campaign.PassiveURL = *input.PassiveURL
	}
	if input.DetractorURL != nil {
		campaign.DetractorURL = *input.DetractorURL
	}
	if input.WebhookURL != nil {
		campaign.WebhookURL = *input.WebhookURL
	}
	if input.IsActive != nil {
		campaign.IsActive = *input.IsActive
	}
}

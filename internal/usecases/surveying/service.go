package surveying

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/nps-survey-api/infrastructure/notifier"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/locator"
	"github.com/vfg2006/nps-survey-api/pkg/log"
	"github.com/vfg2006/nps-survey-api/pkg/utils"
)

// surveyPathPrefix é o prefixo do caminho lógico de uma pesquisa no localizador
const surveyPathPrefix = "survey/"

// SubmissionInput é o que a página de pesquisa envia ao submeter uma nota
type SubmissionInput struct {
	CampaignID string            `json:"-"`
	Locator    string            `json:"locator"`
	Score      *int              `json:"score"`
	Comment    string            `json:"comment"`
	Email      string            `json:"email"`
	Metadata   map[string]string `json:"metadata"`
}

// SubmissionResult é o desfecho de uma submissão aceita. RedirectURL vazia
// significa "permanecer na tela de agradecimento".
type SubmissionResult struct {
	ResponseID  string           `json:"response_id"`
	Band        domain.ScoreBand `json:"band"`
	RedirectURL string           `json:"redirect_url,omitempty"`
}

type SurveyService interface {
	Resolve(ctx context.Context, rawLocator string) (*domain.Campaign, error)
	Submit(ctx context.Context, input SubmissionInput) (*SubmissionResult, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	responseRepo repository.ResponseRepository
	notifier     notifier.Notifier
	cfg          *config.Config

	// now é injetável em testes
	now func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	responseRepo repository.ResponseRepository,
	webhookNotifier notifier.Notifier,
	cfg *config.Config,
) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		responseRepo: responseRepo,
		notifier:     webhookNotifier,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Resolve decodifica o localizador e resolve a campanha efetiva a apresentar.
// Precedência: campanha armazenada por id → campanha efêmera do token portátil
// → indisponível. Campanha inativa é indistinguível de inexistente.
func (s *Service) Resolve(ctx context.Context, rawLocator string) (*domain.Campaign, error) {
	route := locator.Parse(rawLocator)

	campaignID := ""
	if strings.HasPrefix(route.Path, surveyPathPrefix) {
		campaignID = strings.TrimPrefix(route.Path, surveyPathPrefix)
	}

	campaign, err := s.resolveCampaign(ctx, campaignID, route.Params)
	if err != nil {
		return nil, err
	}

	if campaign == nil || !campaign.IsActive {
		return nil, ErrSurveyUnavailable
	}

	return campaign, nil
}

// resolveCampaign aplica a precedência de resolução. Retorna nil quando nada
// resolve; quem chama decide como apresentar a indisponibilidade.
func (s *Service) resolveCampaign(ctx context.Context, campaignID string, params map[string]string) (*domain.Campaign, error) {
	if campaignID != "" {
		stored, err := s.campaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
		}
		if stored != nil {
			return stored, nil
		}
	}

	token, ok := params[domain.PortableTokenParam]
	if !ok {
		return nil, nil
	}

	portable, err := domain.DecodePortable(token)
	if err != nil {
		// Token malformado equivale a "nenhuma campanha portátil disponível"
		log.ForContext(ctx).WithField("campaign_id", campaignID).Debug("Token portátil inválido, ignorando")
		return nil, nil
	}

	// Sintetiza uma campanha efêmera: valores da factory, campos do token por
	// cima, id do caminho quando houver. Nunca é gravada na coleção.
	campaign := domain.NewCampaign()
	if campaignID != "" {
		campaign.ID = campaignID
	}
	portable.Apply(campaign)
	campaign.Ephemeral = true

	return campaign, nil
}

// Submit executa a transição Scored → Submitted → Redirecting: valida a nota,
// persiste a resposta, dispara o webhook em segundo plano e calcula a URL de
// redirecionamento conforme a faixa da nota.
func (s *Service) Submit(ctx context.Context, input SubmissionInput) (*SubmissionResult, error) {
	route := locator.Parse(input.Locator)

	campaign, err := s.resolveCampaign(ctx, input.CampaignID, route.Params)
	if err != nil {
		return nil, err
	}

	// Campanha inexistente ou inativa: nenhuma resposta é criada
	if campaign == nil || !campaign.IsActive {
		return nil, ErrSurveyUnavailable
	}

	if input.Score == nil {
		return nil, ErrScoreRequired
	}
	if !domain.ValidScore(*input.Score) {
		return nil, ErrInvalidScore
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateID, err)
	}

	response := &domain.Response{
		ID:          id,
		Timestamp:   s.now().UTC(),
		CampaignID:  campaign.ID,
		Score:       *input.Score,
		Comment:     strings.TrimSpace(input.Comment),
		Email:       strings.TrimSpace(input.Email),
		Metadata:    input.Metadata,
		RouteParams: route.Params,
	}

	// A persistência local precede qualquer notificação de rede: a resposta
	// nunca se perde por falha do webhook
	if err := s.responseRepo.Prepend(ctx, response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageOperation, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"response_id": response.ID,
		"campaign_id": campaign.ID,
		"score":       response.Score,
	}).Info("Resposta registrada")

	if campaign.WebhookURL != "" {
		// Disparo desacoplado: o resultado é descartado e o redirecionamento
		// não espera a notificação
		go s.notifier.NotifySubmission(context.Background(), campaign.WebhookURL, response)
	}

	band := response.Band()

	return &SubmissionResult{
		ResponseID:  response.ID,
		Band:        band,
		RedirectURL: s.buildRedirectURL(ctx, campaign.URLForBand(band), route.Params, response.Email, response.Score),
	}, nil
}

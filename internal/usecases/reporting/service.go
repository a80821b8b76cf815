package reporting

import (
	"context"

	"github.com/vfg2006/nps-survey-api/infrastructure/repository"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/utils"
)

// Summary é o agregado NPS de um conjunto de respostas
type Summary struct {
	Total      int `json:"total"`
	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
	NPS        int `json:"nps"`
}

// Aggregate computa o agregado NPS. Função pura, recalculada a cada leitura:
// o conjunto de dados é pequeno o bastante para a recomputação ser a escolha
// mais simples e correta. O arredondamento é para o inteiro mais próximo,
// metade para longe de zero.
func Aggregate(responses []*domain.Response) Summary {
	summary := Summary{Total: len(responses)}

	for _, response := range responses {
		switch response.Band() {
		case domain.BandPromoter:
			summary.Promoters++
		case domain.BandPassive:
			summary.Passives++
		default:
			summary.Detractors++
		}
	}

	// Total zero define NPS como 0 (sem divisão por zero)
	if summary.Total > 0 {
		summary.NPS = utils.RoundToInt(float64(summary.Promoters-summary.Detractors) / float64(summary.Total) * 100)
	}

	return summary
}

type ReportingService interface {
	Summary(ctx context.Context, campaignID string) (Summary, error)
	ExportCSV(ctx context.Context, campaignID string) (string, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	responseRepo repository.ResponseRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	responseRepo repository.ResponseRepository,
) ReportingService {
	return &Service{
		campaignRepo: campaignRepo,
		responseRepo: responseRepo,
	}
}

// Summary agrega as respostas, opcionalmente filtradas por campanha
func (s *Service) Summary(ctx context.Context, campaignID string) (Summary, error) {
	responses, err := s.listResponses(ctx, campaignID)
	if err != nil {
		return Summary{}, err
	}

	return Aggregate(responses), nil
}

func (s *Service) listResponses(ctx context.Context, campaignID string) ([]*domain.Response, error) {
	if campaignID != "" {
		return s.responseRepo.ListByCampaign(ctx, campaignID)
	}
	return s.responseRepo.List(ctx)
}

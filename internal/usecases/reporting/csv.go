package reporting

import (
	"context"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/nps-survey-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// csvColumns é a ordem fixa das colunas do export
var csvColumns = []string{
	"id",
	"timestamp",
	"campaignId",
	"score",
	"comment",
	"email",
	"brand",
	"audience",
	"metadata",
	"routeParams",
}

// ExportCSV serializa as respostas (opcionalmente filtradas por campanha) em
// CSV: todos os valores entre aspas, aspas internas duplicadas, linhas
// separadas por quebra de linha. Zero respostas produz string vazia, sem
// cabeçalho órfão.
func (s *Service) ExportCSV(ctx context.Context, campaignID string) (string, error) {
	responses, err := s.listResponses(ctx, campaignID)
	if err != nil {
		return "", err
	}

	if len(responses) == 0 {
		return "", nil
	}

	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return "", err
	}

	campaignsByID := make(map[string]*domain.Campaign, len(campaigns))
	for _, campaign := range campaigns {
		campaignsByID[campaign.ID] = campaign
	}

	rows := make([]string, 0, len(responses)+1)
	rows = append(rows, csvRow(csvColumns))

	for _, response := range responses {
		// Brand e audience vêm da campanha armazenada; respostas de campanhas
		// efêmeras ficam com os campos em branco
		brand := ""
		audience := ""
		if campaign, ok := campaignsByID[response.CampaignID]; ok {
			brand = campaign.BrandName
			audience = string(campaign.Audience)
		}

		rows = append(rows, csvRow([]string{
			response.ID,
			response.Timestamp.Format(time.RFC3339),
			response.CampaignID,
			strconv.Itoa(response.Score),
			response.Comment,
			response.Email,
			brand,
			audience,
			serializeMap(response.Metadata),
			serializeMap(response.RouteParams),
		}))
	}

	return strings.Join(rows, "\n"), nil
}

func csvRow(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func serializeMap(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}

	return string(payload)
}

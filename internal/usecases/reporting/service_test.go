package reporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func responsesWithScores(scores ...int) []*domain.Response {
	responses := make([]*domain.Response, len(scores))
	for i, score := range scores {
		responses[i] = &domain.Response{
			ID:         "r" + string(rune('a'+i)),
			CampaignID: "cmp1",
			Score:      score,
		}
	}
	return responses
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected Summary
	}{
		{
			name:     "Conjunto vazio define NPS como zero",
			scores:   nil,
			expected: Summary{},
		},
		{
			name:   "Seis promotores, dois neutros, dois detratores",
			scores: []int{10, 9, 9, 10, 9, 10, 7, 8, 3, 6},
			expected: Summary{
				Total:      10,
				Promoters:  6,
				Passives:   2,
				Detractors: 2,
				NPS:        40,
			},
		},
		{
			name:   "Todos detratores",
			scores: []int{0, 1, 2},
			expected: Summary{
				Total:      3,
				Detractors: 3,
				NPS:        -100,
			},
		},
		{
			name:   "Arredondamento para o inteiro mais próximo",
			scores: []int{10, 10, 5, 7, 7, 7}, // (2-1)/6*100 = 16,67 → 17
			expected: Summary{
				Total:      6,
				Promoters:  2,
				Passives:   3,
				Detractors: 1,
				NPS:        17,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(responsesWithScores(tt.scores...)))
		})
	}
}

func TestSummaryFiltersByCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)
	service := NewService(campaignRepo, responseRepo)

	responseRepo.EXPECT().
		ListByCampaign(gomock.Any(), "cmp1").
		Return(responsesWithScores(10, 9, 0), nil)

	summary, err := service.Summary(context.Background(), "cmp1")
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 3, Promoters: 2, Detractors: 1, NPS: 33}, summary)
}

func TestExportCSVEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)
	service := NewService(campaignRepo, responseRepo)

	responseRepo.EXPECT().List(gomock.Any()).Return([]*domain.Response{}, nil)

	// Zero respostas: string vazia, sem cabeçalho órfão
	csv, err := service.ExportCSV(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", csv)
}

func TestExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)
	service := NewService(campaignRepo, responseRepo)

	responseRepo.EXPECT().List(gomock.Any()).Return([]*domain.Response{
		{
			ID:          "resp1",
			Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			CampaignID:  "cmp1",
			Score:       9,
			Comment:     `ótimo "serviço"`,
			Email:       "ana@example.com",
			Metadata:    map[string]string{"locale": "pt-BR"},
			RouteParams: map[string]string{"utm_source": "email"},
		},
		{
			ID:         "resp2",
			Timestamp:  time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC),
			CampaignID: "ephemeral1",
			Score:      3,
		},
	}, nil)

	campaignRepo.EXPECT().List(gomock.Any()).Return([]*domain.Campaign{
		{ID: "cmp1", BrandName: "Loja Exemplo", Audience: domain.AudienceCustomers},
	}, nil)

	csv, err := service.ExportCSV(context.Background(), "")
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)

	assert.Equal(
		t,
		`"id","timestamp","campaignId","score","comment","email","brand","audience","metadata","routeParams"`,
		lines[0],
	)

	// Aspas internas duplicadas, brand e audience vindos da campanha
	assert.Equal(
		t,
		`"resp1","2024-05-01T12:00:00Z","cmp1","9","ótimo ""serviço""","ana@example.com","Loja Exemplo","customers","{""locale"":""pt-BR""}","{""utm_source"":""email""}"`,
		lines[1],
	)

	// Campanha efêmera ausente do storage: brand e audience em branco
	assert.Equal(
		t,
		`"resp2","2024-05-02T08:30:00Z","ephemeral1","3","","","","","{}","{}"`,
		lines[2],
	)
}

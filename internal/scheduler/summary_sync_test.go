package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSyncSummariesComputesPerCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockResponseRepo := mocks.NewMockResponseRepository(ctrl)

	service := &SummarySyncService{
		campaignRepo: mockCampaignRepo,
		responseRepo: mockResponseRepo,
	}

	mockCampaignRepo.EXPECT().
		List(gomock.Any()).
		Return([]*domain.Campaign{
			{ID: "cmp1", Name: "Pós-venda"},
			{ID: "cmp2", Name: "Suporte"},
		}, nil)

	mockResponseRepo.EXPECT().
		ListByCampaign(gomock.Any(), "cmp1").
		Return([]*domain.Response{{Score: 10}, {Score: 2}}, nil)

	mockResponseRepo.EXPECT().
		ListByCampaign(gomock.Any(), "cmp2").
		Return([]*domain.Response{}, nil)

	service.syncSummaries(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastSyncStartedAt)
	assert.NotNil(t, status.LastSyncCompletedAt)
}

func TestStartDisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewSummarySyncService(
		mocks.NewMockCampaignRepository(ctrl),
		mocks.NewMockResponseRepository(ctrl),
		&config.Config{SummarySync: config.SummarySync{Enabled: false, CronSchedule: "0 7 * * *"}},
	)

	// Desabilitado: Start não agenda nada e não falha
	assert.NoError(t, service.Start(context.Background()))

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, "0 7 * * *", status.CronSchedule)
}

package campaigning

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{BaseURL: "https://nps.example.com"},
	}
}

func TestCreateCampaignAppliesInputOverDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	var created *domain.Campaign
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
			created = c
			return nil
		})

	name := "Pós-compra"
	promoterURL := "https://reviews.example/leave"
	campaign, err := service.CreateCampaign(context.Background(), CampaignInput{
		Name:        &name,
		PromoterURL: &promoterURL,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, "Pós-compra", campaign.Name)
	assert.Equal(t, "https://reviews.example/leave", campaign.PromoterURL)
	// Campos não informados mantêm os valores da factory
	assert.Equal(t, domain.AudienceCustomers, campaign.Audience)
	assert.True(t, campaign.IsActive)
	assert.False(t, campaign.Ephemeral)
	assert.Same(t, campaign, created)
}

func TestCreateCampaignRejectsIDCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	// O id gerado já existe no armazenamento: nada é gravado
	mockRepo.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		Return(&domain.Campaign{ID: "taken"}, nil)

	campaign, err := service.CreateCampaign(context.Background(), CampaignInput{})
	require.ErrorIs(t, err, ErrCampaignConflict)
	assert.Nil(t, campaign)
}

func TestUpdateCampaignReplacesByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	stored := &domain.Campaign{ID: "cmp1", Name: "Antiga", IsActive: true}

	mockRepo.EXPECT().GetByID(gomock.Any(), "cmp1").Return(stored, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Campaign) (bool, error) {
			assert.Equal(t, "cmp1", c.ID)
			assert.Equal(t, "Nova", c.Name)
			return true, nil
		})

	name := "Nova"
	updated, err := service.UpdateCampaign(context.Background(), "cmp1", CampaignInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Nova", updated.Name)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

	name := "Qualquer"
	_, err := service.UpdateCampaign(context.Background(), "ghost", CampaignInput{Name: &name})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().Delete(gomock.Any(), "cmp1").Return(true, nil)
	assert.NoError(t, service.DeleteCampaign(context.Background(), "cmp1"))

	mockRepo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)
	assert.ErrorIs(t, service.DeleteCampaign(context.Background(), "ghost"), ErrCampaignNotFound)

	assert.ErrorIs(t, service.DeleteCampaign(context.Background(), ""), ErrCampaignIDRequired)
}

func TestPortableLinkRoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	stored := &domain.Campaign{
		ID:           "cmp1",
		Name:         "Pós-venda",
		BrandName:    "Loja Exemplo",
		DetractorURL: "example.com/fix",
		IsActive:     true,
	}
	mockRepo.EXPECT().GetByID(gomock.Any(), "cmp1").Return(stored, nil)

	link, err := service.PortableLink(context.Background(), "cmp1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://nps.example.com/#/survey/cmp1?c="), link)

	// O token embutido deve reconstruir a configuração pública da campanha
	rawToken := link[strings.Index(link, "?c=")+3:]
	token, err := url.QueryUnescape(rawToken)
	require.NoError(t, err)

	decoded, err := domain.DecodePortable(token)
	require.NoError(t, err)
	assert.Equal(t, "Loja Exemplo", *decoded.BrandName)
	assert.Equal(t, "example.com/fix", *decoded.DetractorURL)
	assert.True(t, *decoded.IsActive)
}

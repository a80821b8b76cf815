package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/usecases/reporting"
)

// SummarySyncConfig representa a configuração do agendador de resumos de NPS
type SummarySyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// SummarySyncService registra periodicamente o agregado NPS de cada campanha.
// É apenas observacional: o agregado continua sendo recomputado a cada leitura
// do dashboard, nada é cacheado aqui.
type SummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySyncConfig
	campaignRepo        repository.CampaignRepository
	responseRepo        repository.ResponseRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SummarySyncStatus é o estado do agendador exposto pela API
type SummarySyncStatus struct {
	Enabled             bool       `json:"enabled"`
	CronSchedule        string     `json:"cron_schedule"`
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// NewSummarySyncService cria uma nova instância do serviço de resumos
func NewSummarySyncService(
	campaignRepo repository.CampaignRepository,
	responseRepo repository.ResponseRepository,
	appConfig *config.Config,
) *SummarySyncService {
	syncConfig := SummarySyncConfig{
		CronSchedule: appConfig.SummarySync.CronSchedule,
		Enabled:      appConfig.SummarySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.Enabled,
	}).Info("Configuração do agendador de resumos de NPS carregada")

	return &SummarySyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		campaignRepo: campaignRepo,
		responseRepo: responseRepo,
	}
}

// Start inicia o agendador
func (s *SummarySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendador de resumos de NPS desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumos de NPS")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSummaries(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumos de NPS: %w", err)
	}

	s.scheduler.StartAsync()

	// Para o agendador quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumos de NPS")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa o resumo imediatamente, fora do agendamento
func (s *SummarySyncService) TriggerManualSync() {
	go s.syncSummaries(context.Background())
}

// Status devolve o estado atual do agendador
func (s *SummarySyncService) Status() SummarySyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SummarySyncStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}

// syncSummaries computa e registra o agregado NPS de cada campanha armazenada
func (s *SummarySyncService) syncSummaries(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo de NPS já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para o resumo de NPS")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha encontrada para o resumo de NPS")
		return
	}

	for _, campaign := range campaigns {
		responses, err := s.responseRepo.ListByCampaign(ctx, campaign.ID)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao buscar respostas para o resumo de NPS")
			continue
		}

		summary := reporting.Aggregate(responses)

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"name":        campaign.Name,
			"total":       summary.Total,
			"promoters":   summary.Promoters,
			"passives":    summary.Passives,
			"detractors":  summary.Detractors,
			"nps":         summary.NPS,
		}).Info("Resumo de NPS da campanha")
	}

	logrus.WithField("campaigns", len(campaigns)).Info("Resumo de NPS concluído")
}

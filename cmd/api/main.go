package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-survey-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-survey-api/infrastructure/notifier"
	"github.com/vfg2006/nps-survey-api/infrastructure/repository"
	"github.com/vfg2006/nps-survey-api/infrastructure/storage"
	"github.com/vfg2006/nps-survey-api/internal/api"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/scheduler"
	"github.com/vfg2006/nps-survey-api/internal/usecases/campaigning"
	"github.com/vfg2006/nps-survey-api/internal/usecases/reporting"
	"github.com/vfg2006/nps-survey-api/internal/usecases/surveying"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, cleanup := newStore(ctx, cfg)
	defer cleanup()

	campaignRepo := repository.NewCampaignRepository(store)
	responseRepo := repository.NewResponseRepository(store)

	webhookNotifier := notifier.NewWebhookNotifier(cfg)

	campaignService := campaigning.NewService(campaignRepo, cfg)
	surveyService := surveying.NewService(campaignRepo, responseRepo, webhookNotifier, cfg)
	reportingService := reporting.NewService(campaignRepo, responseRepo)

	// Inicializa o agendador de resumos de NPS
	summarySyncService := scheduler.NewSummarySyncService(campaignRepo, responseRepo, cfg)

	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumos de NPS")
	} else {
		logrus.Info("Agendador de resumos de NPS iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		surveyService,
		reportingService,
		summarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStore escolhe o backend de persistência conforme a configuração. A função
// de limpeza fecha a conexão com o banco quando o driver for postgres.
func newStore(ctx context.Context, cfg *config.Config) (storage.Store, func()) {
	switch cfg.Storage.Driver {
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
		}

		store, err := storage.NewPgStore(ctx, conn)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o armazenamento no PostgreSQL")
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return store, func() { conn.Close() }

	default:
		store, err := storage.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o armazenamento em arquivo")
		}

		logrus.WithField("path", cfg.Storage.FilePath).Info("Armazenamento em arquivo inicializado")
		return store, func() {}
	}
}

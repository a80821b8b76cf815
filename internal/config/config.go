package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Storage     Storage     `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Webhook     Webhook     `mapstructure:",squash"`
	SummarySync SummarySync `mapstructure:",squash"`
	CORS        CORS        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// BaseURL é a origem pública da aplicação (painel + página de pesquisa).
	// Destinos de redirecionamento nesta origem são tratados como internos.
	BaseURL string `mapstructure:"app_base_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	// Driver escolhe o backend de persistência: "file" ou "postgres"
	Driver   string `mapstructure:"storage_driver"`
	FilePath string `mapstructure:"storage_file_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Webhook struct {
	TimeoutSeconds int    `mapstructure:"webhook_timeout_seconds"`
	UserAgent      string `mapstructure:"webhook_user_agent"`
}

type SummarySync struct {
	CronSchedule string `mapstructure:"summary_sync_cron"`
	Enabled      bool   `mapstructure:"summary_sync_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")

	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_FILE_PATH", "data/nps-store.json")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/nps?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 10)
	viper.SetDefault("WEBHOOK_USER_AGENT", "nps-survey-api/1.0")

	// Resumo diário de NPS por campanha (apenas observacional)
	viper.SetDefault("SUMMARY_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}

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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	AdLifecycleSync AdLifecycleSync `mapstructure:",squash"`
	AdAnalyticsSync AdAnalyticsSync `mapstructure:",squash"`
	AdminAPIKey     string          `mapstructure:"admin_api_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// AdLifecycleSync configura o job de ativação/expiração de anúncios
type AdLifecycleSync struct {
	CronSchedule string `mapstructure:"ad_lifecycle_sync_cron"`
	Enabled      bool   `mapstructure:"ad_lifecycle_sync_enabled"`
}

// AdAnalyticsSync configura o job de agregação diária de métricas
type AdAnalyticsSync struct {
	CronSchedule   string `mapstructure:"ad_analytics_sync_cron"`
	Enabled        bool   `mapstructure:"ad_analytics_sync_enabled"`
	MaxAttempts    int    `mapstructure:"ad_analytics_sync_max_attempts"`
	TimeoutSeconds int    `mapstructure:"ad_analytics_sync_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_manager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADMIN_API_KEY", "") // ONLY LOCAL

	// Defaults para o ciclo de vida de anúncios
	viper.SetDefault("AD_LIFECYCLE_SYNC_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("AD_LIFECYCLE_SYNC_ENABLED", true)

	// Defaults para a agregação diária de métricas
	viper.SetDefault("AD_ANALYTICS_SYNC_CRON", "10 0 * * *") // Todos os dias às 00h10
	viper.SetDefault("AD_ANALYTICS_SYNC_ENABLED", true)
	viper.SetDefault("AD_ANALYTICS_SYNC_MAX_ATTEMPTS", 3)      // 3 tentativas por execução
	viper.SetDefault("AD_ANALYTICS_SYNC_TIMEOUT_SECONDS", 300) // 5 minutos por tentativa

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

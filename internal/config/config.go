package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	ESR           ESR           `mapstructure:",squash"`
	Pipeline      Pipeline      `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	UpstreamProbe UpstreamProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// ESR configura o cliente da API Export Sales Reporting do USDA FAS
type ESR struct {
	BaseURL    string        `mapstructure:"esr_base_url"`
	APIKey     string        `mapstructure:"esr_api_key"`
	Timeout    time.Duration `mapstructure:"esr_timeout"`
	MaxRetries int           `mapstructure:"esr_max_retries"`
	RetryDelay time.Duration `mapstructure:"esr_retry_delay"`
}

type Pipeline struct {
	// MonthOffset 0 inclui o mês mais recente; 1 descarta o mês mais recente (normalmente parcial)
	MonthOffset int `mapstructure:"pipeline_month_offset"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type UpstreamProbe struct {
	CronSchedule  string `mapstructure:"upstream_probe_cron"`
	Enabled       bool   `mapstructure:"upstream_probe_enabled"`
	CommodityCode int    `mapstructure:"upstream_probe_commodity_code"`
	MarketYear    string `mapstructure:"upstream_probe_market_year"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("ESR_BASE_URL", "https://apps.fas.usda.gov/OpenData")
	viper.SetDefault("ESR_API_KEY", "")
	viper.SetDefault("ESR_TIMEOUT", "30s")
	viper.SetDefault("ESR_MAX_RETRIES", 3)      // 3 retentativas além da primeira chamada
	viper.SetDefault("ESR_RETRY_DELAY", "1s") // Dobra a cada tentativa

	viper.SetDefault("PIPELINE_MONTH_OFFSET", 0)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/export_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("UPSTREAM_PROBE_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("UPSTREAM_PROBE_ENABLED", false)
	viper.SetDefault("UPSTREAM_PROBE_COMMODITY_CODE", 101)
	viper.SetDefault("UPSTREAM_PROBE_MARKET_YEAR", fmt.Sprintf("%d", time.Now().Year()))

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
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

// Validate verifica os valores que o pipeline não aceita
func (c *Config) Validate() error {
	if c.Pipeline.MonthOffset != 0 && c.Pipeline.MonthOffset != 1 {
		return fmt.Errorf("PIPELINE_MONTH_OFFSET deve ser 0 ou 1, recebido %d", c.Pipeline.MonthOffset)
	}

	if c.ESR.MaxRetries < 0 {
		return fmt.Errorf("ESR_MAX_RETRIES não pode ser negativo, recebido %d", c.ESR.MaxRetries)
	}

	if c.ESR.BaseURL == "" {
		return fmt.Errorf("ESR_BASE_URL é obrigatório")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

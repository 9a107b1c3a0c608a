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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Import      Import      `mapstructure:",squash"`
	ImportWatch ImportWatch `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // somadas às origens locais do painel
}

type Database struct {
	DSN           string        `mapstructure:"-"`
	Driver        string        `mapstructure:"database_driver"` // sqlite3 ou postgres
	Password      string        `mapstructure:"database_password"`
	URL           string        `mapstructure:"database_url"`
	User          string        `mapstructure:"database_user"`
	Path          string        `mapstructure:"database_path"` // Arquivo do sqlite
	RetryAttempts int           `mapstructure:"database_retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"database_retry_delay"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Cache usa Redis quando o endereço é informado; caso contrário, memória local
type Cache struct {
	RedisAddress  string        `mapstructure:"redis_address"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
}

// Import são os parâmetros de leitura das planilhas
type Import struct {
	QuotationSheets   []string `mapstructure:"quotation_sheets"`
	QuotationSkipRows int      `mapstructure:"quotation_skip_rows"`
	QuotationMinYear  int      `mapstructure:"quotation_min_year"`
	MaxUploadSizeMB   int64    `mapstructure:"max_upload_size_mb"`
}

type ImportWatch struct {
	InboxDir     string `mapstructure:"import_inbox_dir"`
	CronSchedule string `mapstructure:"import_watch_cron"`
	Enabled      bool   `mapstructure:"import_watch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "sqlite3")
	viper.SetDefault("DATABASE_PATH", "ipc.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ipc")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RETRY_ATTEMPTS", 3)
	viper.SetDefault("DATABASE_RETRY_DELAY", "1s")

	viper.SetDefault("REDIS_ADDRESS", "") // vazio = cache em memória
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("QUOTATION_SHEETS", "SP,RS,RJ,PE,MG,DF,BA")
	viper.SetDefault("QUOTATION_SKIP_ROWS", 6)
	viper.SetDefault("QUOTATION_MIN_YEAR", 2024)
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 32)

	viper.SetDefault("IMPORT_INBOX_DIR", "inbox")
	viper.SetDefault("IMPORT_WATCH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("IMPORT_WATCH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão de acordo com o driver
func BuildDSN(db Database) string {
	if db.Driver == "sqlite3" {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", db.Path)
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

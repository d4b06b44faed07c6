package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	CORS     CORSConfig     `yaml:"cors"`
	Catalog  CatalogConfig  `yaml:"catalog"  validate:"required"`
	Postgres PostgresConfig `yaml:"postgres"`
	Latency  LatencyConfig  `yaml:"latency"`
	Notify   NotifyConfig   `yaml:"notify"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type CORSConfig struct {
	AllowOrigins []string      `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	MaxAge       time.Duration `yaml:"max_age"       env:"CORS_MAX_AGE"       env-default:"12h"`
}

// CatalogConfig picks where properties and reviews come from. Strict makes
// reviews that point at unknown properties a startup error instead of a
// warning.
type CatalogConfig struct {
	Source string `yaml:"source" env:"CATALOG_SOURCE" env-default:"seed"  validate:"required,oneof=seed postgres"`
	Strict bool   `yaml:"strict" env:"CATALOG_STRICT" env-default:"false"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"     validate:"min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"staybook"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"  validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"       validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"        validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"       validate:"gt=0"`
	MigrationsDir   string        `yaml:"migrations_dir"    env:"DB_MIGRATIONS_DIR"    env-default:"migrations"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// LatencyConfig holds the artificial delay each endpoint waits before
// answering. Zero disables it.
type LatencyConfig struct {
	Properties time.Duration `yaml:"properties" env:"LATENCY_PROPERTIES" env-default:"1s"     validate:"gte=0"`
	Reviews    time.Duration `yaml:"reviews"    env:"LATENCY_REVIEWS"    env-default:"1200ms" validate:"gte=0"`
	Bookings   time.Duration `yaml:"bookings"   env:"LATENCY_BOOKINGS"   env-default:"1500ms" validate:"gte=0"`
}

type NotifyConfig struct {
	TelegramToken  string        `yaml:"telegram_token"   env:"TELEGRAM_BOT_TOKEN"   env-default:""`
	TelegramChatID int64         `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"     env-default:"0"`
	AMQPURL        string        `yaml:"amqp_url"         env:"RABBITMQ_URL"         env-default:""`
	AMQPQueue      string        `yaml:"amqp_queue"       env:"RABBITMQ_QUEUE"       env-default:"bookings_queue"`
	Workers        int           `yaml:"workers"          env:"NOTIFY_WORKERS"       env-default:"4"  validate:"min=1"`
	SendTimeout    time.Duration `yaml:"send_timeout"     env:"NOTIFY_SEND_TIMEOUT"  env-default:"10s" validate:"gt=0"`
}

// ClientConfig is what the command-line client needs to reach the API.
type ClientConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://127.0.0.1:8080" validate:"required"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"10s"                   validate:"gt=0"`
}

func loadDotEnv() {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()
}

func Load() (*Config, error) {
	loadDotEnv()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func MustLoadClient() *ClientConfig {
	loadDotEnv()

	var cfg ClientConfig
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load client config: %v", err))
	}
	return &cfg
}

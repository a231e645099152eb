package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, schedules, pricing defaults)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Cookie    CookieConfig
	Pricing   PricingConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
	Migration MigrationConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	// bcrypt hash of the admin access token
	TokenHash   string `envconfig:"ADMIN_TOKEN_HASH" required:"true"`
	NotifyEmail string `envconfig:"ADMIN_NOTIFY_EMAIL"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type PricingConfig struct {
	FormulaFallback  bool            `envconfig:"PRICING_FORMULA_FALLBACK" default:"true"`
	DefaultBasePrice decimal.Decimal `envconfig:"PRICING_DEFAULT_BASE_PRICE" default:"100"`
}

type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	FromEmail      string `envconfig:"MAIL_FROM_EMAIL" default:"noreply@example.com"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"Stellplatzvermietung"`
}

type SchedulerConfig struct {
	Enabled                 bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	NotificationDispatch    string `envconfig:"NOTIFICATION_DISPATCH_SPEC" default:"*/30 * * * * *"`
	Cleanup                 string `envconfig:"CLEANUP_SPEC" default:"0 15 3 * * *"`
	NotificationMaxAttempts int    `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"3"`
	NotificationBatchSize   int    `envconfig:"NOTIFICATION_BATCH_SIZE" default:"20"`
}

type MigrationConfig struct {
	OnStart bool `envconfig:"MIGRATE_ON_START" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		Admin: AdminConfig{
			// suites that log in set TokenHash themselves
			NotifyEmail: "admin@example.com",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Pricing: PricingConfig{
			FormulaFallback:  true,
			DefaultBasePrice: decimal.NewFromInt(100),
		},
		Mail: MailConfig{
			FromEmail: "noreply@example.com",
			FromName:  "Stellplatzvermietung",
		},
		Scheduler: SchedulerConfig{
			Enabled:                 false,
			NotificationDispatch:    "*/30 * * * * *",
			Cleanup:                 "0 15 3 * * *",
			NotificationMaxAttempts: 3,
			NotificationBatchSize:   20,
		},
		Migration: MigrationConfig{
			OnStart: true,
		},
	}
}

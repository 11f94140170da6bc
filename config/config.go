package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	HttpClient    HttpClientConfig
	MessageStream MessageStreamConfig
	Jwt           JwtConfig
	Google        GoogleConfig
	Contact       ContactConfig
	Scheduler     SchedulerConfig
	IDGen         IDGenConfig
}

type HttpServerConfig struct {
	Port        string   `envconfig:"HTTP_PORT" default:"7000"`
	CorsOrigins string   `envconfig:"HTTP_CORS_ORIGINS" default:"*"`
	AuthRate    float64  `envconfig:"HTTP_AUTH_RATE" default:"5"`
	AuthBurst   int      `envconfig:"HTTP_AUTH_BURST" default:"10"`
	TrustedIPs  []string `envconfig:"HTTP_TRUSTED_PROXIES"`
}

type DatabaseConfig struct {
	Host         string        `envconfig:"DATABASE_HOST" default:"localhost"`
	Port         string        `envconfig:"DATABASE_PORT" default:"5432"`
	Username     string        `envconfig:"DATABASE_USERNAME" default:"postgres"`
	Password     string        `envconfig:"DATABASE_PASSWORD" default:"postgres"`
	Name         string        `envconfig:"DATABASE_NAME" default:"tourism"`
	SSLMode      string        `envconfig:"DATABASE_SSLMODE" default:"disable"`
	MaxOpenConns int           `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	MaxLifetime  time.Duration `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate  bool          `envconfig:"DATABASE_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type HttpClientConfig struct {
	Type                  string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Timeout               time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
	ConsecutiveThreshold  int64         `envconfig:"HTTP_CLIENT_CONSECUTIVE_THRESHOLD" default:"5"`
	ErrorThreshold        int64         `envconfig:"HTTP_CLIENT_ERROR_THRESHOLD" default:"10"`
	ErrorRate             float64       `envconfig:"HTTP_CLIENT_ERROR_RATE" default:"0.5"`
	ErrorRateMinSamples   int64         `envconfig:"HTTP_CLIENT_ERROR_RATE_MIN_SAMPLES" default:"20"`
	MaxIdleConnsPerHost   int           `envconfig:"HTTP_CLIENT_MAX_IDLE_CONNS_PER_HOST" default:"10"`
	IdleConnectionTimeout time.Duration `envconfig:"HTTP_CLIENT_IDLE_CONN_TIMEOUT" default:"90s"`
}

type MessageStreamConfig struct {
	Host       string        `envconfig:"AMQP_HOST" default:"localhost"`
	Port       string        `envconfig:"AMQP_PORT" default:"5672"`
	Username   string        `envconfig:"AMQP_USERNAME" default:"guest"`
	Password   string        `envconfig:"AMQP_PASSWORD" default:"guest"`
	MaxRetries int           `envconfig:"AMQP_MAX_RETRIES" default:"3"`
	RetryDelay time.Duration `envconfig:"AMQP_RETRY_DELAY" default:"1s"`
}

type JwtConfig struct {
	Secret    string        `envconfig:"JWT_SECRET" default:"change-me"`
	ExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"24h"`
	Issuer    string        `envconfig:"JWT_ISSUER" default:"tourism-service"`
}

type GoogleConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	CallbackURL  string `envconfig:"GOOGLE_CALLBACK_URL" default:"http://localhost:7000/auth/google/callback"`
	FrontendURL  string `envconfig:"FRONTEND_URL" default:"http://localhost:7001"`
	UserInfoURL  string `envconfig:"GOOGLE_USERINFO_URL" default:"https://www.googleapis.com/oauth2/v2/userinfo"`
}

type ContactConfig struct {
	WebhookURL string `envconfig:"CONTACT_WEBHOOK_URL"`
	FooterText string `envconfig:"CONTACT_FOOTER_TEXT" default:"Sent from the tourism website"`
}

type SchedulerConfig struct {
	CompleteSchedulesCron string `envconfig:"SCHEDULER_COMPLETE_SCHEDULES_CRON" default:"@daily"`
	MonitoringPort        string `envconfig:"SCHEDULER_MONITORING_PORT" default:"8080"`
	Concurrency           int    `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
}

type IDGenConfig struct {
	Length         int           `envconfig:"IDGEN_LENGTH" default:"5"`
	MaxLength      int           `envconfig:"IDGEN_MAX_LENGTH" default:"8"`
	AttemptsPerLen int           `envconfig:"IDGEN_ATTEMPTS_PER_LENGTH" default:"10"`
	ReservationTTL time.Duration `envconfig:"IDGEN_RESERVATION_TTL" default:"1m"`
}

func InitConfig() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}

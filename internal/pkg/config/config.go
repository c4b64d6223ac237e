package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Redis       RedisConfig
	AMQP        AMQPConfig
	Reservation ReservationConfig
	Sweeper     SweeperConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Driver   string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// Transient failures (connection resets, serialization failures) are retried this many times.
	MaxRetries int `envconfig:"DB_MAX_RETRIES" default:"2"`
	// Applies the embedded SQL migrations on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	// Memory driver only: registers one demo project owned by this user id.
	SeedOwnerID string `envconfig:"MEMORY_SEED_OWNER_ID"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After,X-RateLimit-Limit,X-RateLimit-Remaining"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	StatsTTL time.Duration `envconfig:"REDIS_STATS_TTL" default:"30s"`
}

type AMQPConfig struct {
	// Empty URL routes notifications to the log sink.
	URL            string        `envconfig:"AMQP_URL"`
	Queue          string        `envconfig:"AMQP_QUEUE" default:"unit.events"`
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	Workers        int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"5s"`
}

type ReservationConfig struct {
	HoldTTL                   time.Duration `envconfig:"RESERVATION_HOLD_TTL" default:"48h"`
	DefaultDownPaymentPercent string        `envconfig:"RESERVATION_DEFAULT_DOWN_PAYMENT_PERCENT" default:"5"`
	DealSyncRetries           int           `envconfig:"RESERVATION_DEAL_SYNC_RETRIES" default:"3"`
	DealSyncBackoff           time.Duration `envconfig:"RESERVATION_DEAL_SYNC_BACKOFF" default:"100ms"`
	// Bounds the deal writes that follow a committed transition after the request is gone.
	FollowUpTimeout time.Duration `envconfig:"RESERVATION_FOLLOW_UP_TIMEOUT" default:"10s"`
}

type SweeperConfig struct {
	Enabled     bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Schedule    string        `envconfig:"SWEEPER_SCHEDULE" default:"@every 2m"`
	BatchSize   int           `envconfig:"SWEEPER_BATCH_SIZE" default:"100"`
	UnitTimeout time.Duration `envconfig:"SWEEPER_UNIT_TIMEOUT" default:"5s"`
	RecordGrace time.Duration `envconfig:"SWEEPER_RECORD_GRACE" default:"1m"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl:reservation"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the %s driver", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.DB.Driver)
	}
	if c.Reservation.HoldTTL <= 0 {
		return fmt.Errorf("RESERVATION_HOLD_TTL must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:     StorageDriverMemory,
			Host:       "localhost",
			Port:       "15433", // Test DB port
			User:       "test",
			Password:   "test",
			DBName:     "test_db",
			SSLMode:    "disable",
			TimeZone:   "UTC",
			MaxConns:   10,
			MaxRetries: 2,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:              "test-secret",
			AccessTokenDuration: time.Hour,
		},
		AMQP: AMQPConfig{
			Queue:          "unit.events",
			QueueSize:      64,
			Workers:        1,
			PublishTimeout: time.Second,
		},
		Reservation: ReservationConfig{
			HoldTTL:                   48 * time.Hour,
			DefaultDownPaymentPercent: "5",
			DealSyncRetries:           3,
			DealSyncBackoff:           time.Millisecond,
			FollowUpTimeout:           5 * time.Second,
		},
		Sweeper: SweeperConfig{
			Enabled:     false,
			Schedule:    "@every 2m",
			BatchSize:   100,
			UnitTimeout: time.Second,
			RecordGrace: time.Minute,
		},
		RateLimit: RateLimitConfig{
			Prefix:         "rl:test",
			Capacity:       10,
			RefillTokens:   1,
			RefillInterval: time.Second,
			TTL:            time.Minute,
		},
	}
}

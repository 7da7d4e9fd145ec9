package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, read from the environment.
// A .env file in the working directory is loaded first when present.
type Config struct {
	HTTPPort  string `env:"HTTP_PORT, default=8080"`
	Debug     bool   `env:"DEBUG, default=false"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	DB       DBConfig
	Redis    RedisConfig
	Scoring  ScoringConfig
	Realtime RealtimeConfig
	Jobs     JobsConfig
}

type DBConfig struct {
	Host            string        `env:"DB_HOST, default=localhost"`
	Port            string        `env:"DB_PORT, default=5432"`
	User            string        `env:"DB_USER, default=postgres"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME, default=dispatch"`
	SslMode         string        `env:"DB_SSLMODE, default=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	// Listen enables cross-instance wakeups through LISTEN/NOTIFY.
	Listen bool `env:"DB_LISTEN, default=true"`
}

// DSN renders the connection string understood by both gorm and lib/pq.
func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SslMode),
	}
	return u.String()
}

// RedisConfig is optional: an empty Addr disables the token cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB, default=0"`
	TokenTTL time.Duration `env:"REDIS_TOKEN_TTL, default=30s"`
}

type ScoringConfig struct {
	ProximityWeight       float64 `env:"SCORING_PROXIMITY_WEIGHT, default=100"`
	LoadPenalty           float64 `env:"SCORING_LOAD_PENALTY, default=25"`
	TransportPenaltyPerKm float64 `env:"SCORING_TRANSPORT_PENALTY_PER_KM, default=10"`
	MaxConcurrentOrders   int     `env:"SCORING_MAX_CONCURRENT_ORDERS, default=3"`
}

// Weights converts the settings into the dispatcher policy.
func (c ScoringConfig) Weights() services.ScoringWeights {
	return services.ScoringWeights{
		ProximityWeight:       c.ProximityWeight,
		LoadPenalty:           c.LoadPenalty,
		TransportPenaltyPerKm: c.TransportPenaltyPerKm,
		MaxConcurrentOrders:   c.MaxConcurrentOrders,
	}
}

type RealtimeConfig struct {
	PollInterval      time.Duration `env:"STREAM_POLL_INTERVAL, default=500ms"`
	HeartbeatInterval time.Duration `env:"STREAM_HEARTBEAT_INTERVAL, default=15s"`
	StreamLifetime    time.Duration `env:"STREAM_LIFETIME, default=55s"`
	MaxPollWait       time.Duration `env:"POLL_MAX_WAIT, default=30s"`
	BatchSize         int           `env:"STREAM_BATCH_SIZE, default=100"`
	DefaultSnapshot   int           `env:"SNAPSHOT_DEFAULT, default=50"`
	MaxSnapshot       int           `env:"SNAPSHOT_MAX, default=200"`
	Retention         time.Duration `env:"EVENT_RETENTION, default=24h"`
}

// Feed converts the settings into the feed configuration.
func (c RealtimeConfig) Feed() feed.Config {
	return feed.Config{
		PollInterval:      c.PollInterval,
		HeartbeatInterval: c.HeartbeatInterval,
		StreamLifetime:    c.StreamLifetime,
		MaxPollWait:       c.MaxPollWait,
		BatchSize:         c.BatchSize,
		DefaultSnapshot:   c.DefaultSnapshot,
		MaxSnapshot:       c.MaxSnapshot,
	}
}

// JobsConfig holds cron specs with a seconds field. An empty spec disables a job.
type JobsConfig struct {
	RetentionSpec    string        `env:"JOB_RETENTION_SPEC, default=0 */10 * * * *"`
	AutoDispatchSpec string        `env:"JOB_AUTO_DISPATCH_SPEC"`
	AutoDispatchSize int           `env:"JOB_AUTO_DISPATCH_BATCH, default=50"`
	RunTimeout       time.Duration `env:"JOB_RUN_TIMEOUT, default=1m"`
}

// LoadConfig reads the environment into a Config and validates it.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.Realtime.Retention <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("EVENT_RETENTION"))
	}
	problems = append(problems, c.Scoring.Weights().Validate(), c.Realtime.Feed().Validate())
	return errors.Join(problems...)
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	KMS        KMSConfig        `mapstructure:"kms"`
	Bus        BusConfig        `mapstructure:"bus"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Outbox     OutboxConfig     `mapstructure:"outbox"`
	Resilience ResilienceConfig `mapstructure:"resilience"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// KMSConfig configures the PII envelope-encryption backend. DevMode selects
// the local AES-GCM implementation; Load refuses to start with DevMode true
// when Server.Mode is "release".
type KMSConfig struct {
	DevMode      bool   `mapstructure:"dev_mode"`
	DevKey       string `mapstructure:"dev_key"` // 32-byte hex, dev-mode only
	TransitURL   string `mapstructure:"transit_url"`
	TransitToken string `mapstructure:"transit_token"`
	TransitKey   string `mapstructure:"transit_key_name"`
	HMACIndexKey string `mapstructure:"hmac_index_key"` // hex, deterministic search index
}

// BusConfig configures the outbox's durable-bus transport.
type BusConfig struct {
	URL         string `mapstructure:"url"`
	StreamName  string `mapstructure:"stream_name"`
	ClusterMode bool   `mapstructure:"cluster_mode"`

	// EnrollmentStreamName/EnrollmentSubject locate the upstream enrollment
	// platform's own JetStream stream, bound (not created) by this service's
	// treasure.enrollment.created consumer.
	EnrollmentStreamName string `mapstructure:"enrollment_stream_name"`
	EnrollmentSubject    string `mapstructure:"enrollment_subject"`
}

// GatewayConfig configures the payment/payout gateway HTTP client.
type GatewayConfig struct {
	KeyID             string        `mapstructure:"key_id"`
	KeySecret         string        `mapstructure:"key_secret"`
	WebhookSecret     string        `mapstructure:"webhook_secret"`
	PayoutWebhookSecret string      `mapstructure:"payout_webhook_secret"`
	SettlementAccount string        `mapstructure:"settlement_account"` // RazorpayX source account for vendor payouts
	Timeout           time.Duration `mapstructure:"timeout"`
}

// OutboxConfig tunes the Dispatcher's poll/claim/retry loop.
type OutboxConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxRetries   int           `mapstructure:"max_retries"`
	BaseBackoff  time.Duration `mapstructure:"base_backoff"`
	MaxBackoff   time.Duration `mapstructure:"max_backoff"`
}

// ResilienceConfig tunes the named-policy kernel shared by gateway and KMS
// calls.
type ResilienceConfig struct {
	MaxRetries          int           `mapstructure:"max_retries"`
	InitialInterval     time.Duration `mapstructure:"initial_interval"`
	MaxInterval         time.Duration `mapstructure:"max_interval"`
	BreakerMaxRequests  uint32        `mapstructure:"breaker_max_requests"`
	BreakerInterval     time.Duration `mapstructure:"breaker_interval"`
	BreakerTimeout      time.Duration `mapstructure:"breaker_timeout"`
	BreakerFailureRatio float64       `mapstructure:"breaker_failure_ratio"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PORCH_ (Payment ORCHestrator).
// Nested keys use underscore: PORCH_DATABASE_HOST, PORCH_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_orchestrator")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "payment-orchestrator")
	v.SetDefault("kms.dev_mode", true)
	v.SetDefault("kms.dev_key", "")
	v.SetDefault("kms.transit_url", "")
	v.SetDefault("kms.transit_token", "")
	v.SetDefault("kms.transit_key_name", "pii-vault")
	v.SetDefault("kms.hmac_index_key", "")
	v.SetDefault("bus.url", "nats://localhost:4222")
	v.SetDefault("bus.stream_name", "ORCHESTRATOR_EVENTS")
	v.SetDefault("bus.cluster_mode", false)
	v.SetDefault("bus.enrollment_stream_name", "TREASURE_EVENTS")
	v.SetDefault("bus.enrollment_subject", "treasure.enrollment.created")
	v.SetDefault("gateway.key_id", "")
	v.SetDefault("gateway.key_secret", "")
	v.SetDefault("gateway.webhook_secret", "")
	v.SetDefault("gateway.payout_webhook_secret", "")
	v.SetDefault("gateway.settlement_account", "")
	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("outbox.poll_interval", "2s")
	v.SetDefault("outbox.batch_size", 50)
	v.SetDefault("outbox.max_retries", 8)
	v.SetDefault("outbox.base_backoff", "1s")
	v.SetDefault("outbox.max_backoff", "5m")
	v.SetDefault("resilience.max_retries", 3)
	v.SetDefault("resilience.initial_interval", "200ms")
	v.SetDefault("resilience.max_interval", "5s")
	v.SetDefault("resilience.breaker_max_requests", 5)
	v.SetDefault("resilience.breaker_interval", "60s")
	v.SetDefault("resilience.breaker_timeout", "30s")
	v.SetDefault("resilience.breaker_failure_ratio", 0.5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PORCH_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PORCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Server.Mode == "release" && cfg.KMS.DevMode {
		return nil, fmt.Errorf("kms.dev_mode cannot be true when server.mode=release")
	}

	return &cfg, nil
}

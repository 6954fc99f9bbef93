// Package config loads the CIBIL service configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	GRPCPort int
	HTTPPort int

	DB     DBConfig
	Kafka  KafkaConfig
	Outbox OutboxConfig
	JWT    JWTConfig
	TLS    TLSConfig

	GRPCReflection bool
	LogLevel       string
	LogFormat      string
	Environment    string
}

// DBConfig holds database connection parameters.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// KafkaConfig holds broker and topic configuration. EventsTopic carries the
// service's own domain events; PaymentFeedTopic is the inbound payment
// stream reported by member institutions.
type KafkaConfig struct {
	Brokers          []string
	EventsTopic      string
	PaymentFeedTopic string
	ConsumerGroup    string
}

// OutboxConfig tunes the outbox relay.
type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// JWTConfig holds token validation material. PublicKeyFile takes precedence
// over Secret when both are set.
type JWTConfig struct {
	Secret        string
	PublicKeyFile string
	Issuer        string
}

// TLSConfig holds the gRPC server certificate paths.
type TLSConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

// Validate checks required configuration values.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c Config) GRPCAddress() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9091),
		HTTPPort: getEnvInt("HTTP_PORT", 8091),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "cibil"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "cibil"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 20)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
		},
		Kafka: KafkaConfig{
			Brokers:          []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			EventsTopic:      getEnv("KAFKA_TOPIC", "cibil-events"),
			PaymentFeedTopic: getEnv("KAFKA_PAYMENT_FEED_TOPIC", "cibil-payment-feed"),
			ConsumerGroup:    getEnv("KAFKA_CONSUMER_GROUP", "cibil-service"),
		},
		Outbox: OutboxConfig{
			PollInterval: time.Duration(getEnvInt("OUTBOX_POLL_INTERVAL_MS", 500)) * time.Millisecond,
			BatchSize:    getEnvInt("OUTBOX_BATCH_SIZE", 100),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:        getEnv("JWT_ISSUER", "bibbank-identity"),
		},
		TLS: TLSConfig{
			Enabled:  getEnvBool("TLS_ENABLED", false),
			CertFile: getEnv("TLS_CERT_FILE", ""),
			KeyFile:  getEnv("TLS_KEY_FILE", ""),
		},
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

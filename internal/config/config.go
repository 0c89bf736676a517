package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Port string
}

// APIConfig describes the remote dashboard REST API the gateway proxies to.
type APIConfig struct {
	Host    string
	Timeout time.Duration
	// SelfSignedHosts lists hosts (name or name:port) whose TLS certificates are not verified.
	SelfSignedHosts []string
	// RequireToken makes resource calls fail before any I/O when no bearer token is available.
	RequireToken bool
	// ServiceToken is used by background refreshes that have no incoming request.
	ServiceToken string
}

type SecurityConfig struct {
	JWTSecret string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

// TracingConfig selects the span exporter. With no endpoint and Stdout off, tracing is off.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
	Stdout      bool
}

// Load reads the configuration from the process environment. Callers load .env first.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_HOST", "http://localhost:8000")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("API_REQUIRE_TOKEN", false)
	v.SetDefault("LOG_DIR", "./logs")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("KAFKA_GROUP_ID", "bizdash")
	v.SetDefault("KAFKA_TOPICS", "dashboard.branches")
	v.SetDefault("OTEL_SERVICE_NAME", "bizdash")
	v.SetDefault("TRACING_STDOUT", false)

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("API_TIMEOUT")))
	if err != nil {
		return nil, fmt.Errorf("parse API_TIMEOUT: %w", err)
	}

	host := strings.TrimRight(strings.TrimSpace(v.GetString("API_HOST")), "/")
	if host == "" {
		return nil, fmt.Errorf("API_HOST is required")
	}

	brokers := splitList(v.GetString("KAFKA_BROKERS"))
	if len(brokers) == 0 {
		brokers = splitList(v.GetString("KAFKA_BROKER"))
	}

	return &Config{
		Server: ServerConfig{Port: strings.TrimSpace(v.GetString("PORT"))},
		API: APIConfig{
			Host:            host,
			Timeout:         timeout,
			SelfSignedHosts: splitList(v.GetString("API_SELF_SIGNED_HOSTS")),
			RequireToken:    v.GetBool("API_REQUIRE_TOKEN"),
			ServiceToken:    strings.TrimSpace(v.GetString("API_SERVICE_TOKEN")),
		},
		Security: SecurityConfig{JWTSecret: strings.TrimSpace(v.GetString("JWT_SECRET"))},
		Logging: LoggingConfig{
			Directory: strings.TrimSpace(v.GetString("LOG_DIR")),
			Level:     v.GetString("LOG_LEVEL"),
			Format:    v.GetString("LOG_FORMAT"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			GroupID: strings.TrimSpace(v.GetString("KAFKA_GROUP_ID")),
			Topics:  splitList(v.GetString("KAFKA_TOPICS")),
		},
		Tracing: TracingConfig{
			Endpoint:    strings.TrimSpace(v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")),
			ServiceName: strings.TrimSpace(v.GetString("OTEL_SERVICE_NAME")),
			Stdout:      v.GetBool("TRACING_STDOUT"),
		},
	}, nil
}

// splitList accepts comma or whitespace separated values.
func splitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer             HttpServerConfig
	Database               DatabaseConfig
	Redis                  RedisConfig
	MessageStream          MessageStreamConfig
	HttpClient             HttpClientConfig
	UserService            UserServiceConfig
	SalonService           SalonServiceConfig
	ServiceOfferingService ServiceOfferingServiceConfig
	Reconciliation         ReconciliationConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"http_server_port" default:"8084"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"db_host" default:"localhost"`
	Port         string `envconfig:"db_port" default:"5432"`
	User         string `envconfig:"db_user" default:"postgres"`
	Password     string `envconfig:"db_password" default:"postgres"`
	Name         string `envconfig:"db_name" default:"salon_booking"`
	SSLMode      string `envconfig:"db_ssl_mode" default:"disable"`
	MaxOpenConns int    `envconfig:"db_max_open_conns" default:"25"`
	MaxIdleConns int    `envconfig:"db_max_idle_conns" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	User     string `envconfig:"amqp_user" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"http_client_breaker_type" default:"consecutive"`
	Timeout             int     `envconfig:"http_client_timeout_seconds" default:"10"`
	ConsecutiveFailures int64   `envconfig:"http_client_consecutive_failures" default:"5"`
	ErrorRate           float64 `envconfig:"http_client_error_rate" default:"0.65"`
	Threshold           int64   `envconfig:"http_client_threshold" default:"10"`
	MinSamples          int64   `envconfig:"http_client_min_samples" default:"100"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" default:"localhost"`
	Port string `envconfig:"user_service_port" default:"8081"`
}

type SalonServiceConfig struct {
	Host            string `envconfig:"salon_service_host" default:"localhost"`
	Port            string `envconfig:"salon_service_port" default:"8082"`
	CacheTTLSeconds int    `envconfig:"salon_profile_cache_ttl_seconds" default:"60"`
}

type ServiceOfferingServiceConfig struct {
	Host string `envconfig:"service_offering_host" default:"localhost"`
	Port string `envconfig:"service_offering_port" default:"8083"`
}

type ReconciliationConfig struct {
	MaxRetry          int `envconfig:"reconciliation_max_retry" default:"5"`
	RetryDelaySeconds int `envconfig:"reconciliation_retry_delay_seconds" default:"30"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}

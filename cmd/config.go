package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"haul/internal/adapters/out/postgres"
	"haul/internal/adapters/out/tokens"
)

// Config is read from the environment once at startup.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	DBMaxOpenConns  int
	RedisAddr       string
	RedisManagerTTL time.Duration
	RabbitMQURL     string
	RabbitExchange  string
	JWTSecret       string
	JWTIssuer       string
	JWTAudience     string
	JWTExpiresIn    time.Duration
	OutboxSchedule  string
	OutboxBatchSize int
}

var defaults = map[string]string{
	"HTTP_PORT":          "8080",
	"DB_PORT":            "5432",
	"DB_SSLMODE":         "disable",
	"DB_MAX_OPEN_CONNS":  "25",
	"REDIS_MANAGERS_TTL": "10m",
	"RABBITMQ_EXCHANGE":  "haul.order-events",
	"JWT_ISSUER":         "haul",
	"JWT_AUDIENCE":       "haul-api",
	"JWT_EXPIRES_IN":     "1h",
	"OUTBOX_SCHEDULE":    "* * * * * *",
	"OUTBOX_BATCH_SIZE":  "100",
}

// ConfigFromEnv builds the configuration from lookup, usually os.LookupEnv.
// Empty optional keys take their defaults. REDIS_ADDR and RABBITMQ_URL may be
// left empty to run without the cache or the event relay.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return defaults[key]
	}

	var errList []error
	required := func(key string) string {
		v := get(key)
		if v == "" {
			errList = append(errList, fmt.Errorf("%s is required", key))
		}
		return v
	}
	integer := func(key string) int {
		n, err := strconv.Atoi(get(key))
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}
	duration := func(key string) time.Duration {
		d, err := time.ParseDuration(get(key))
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
		return d
	}

	cfg := Config{
		HTTPPort:        get("HTTP_PORT"),
		DBHost:          required("DB_HOST"),
		DBPort:          get("DB_PORT"),
		DBUser:          required("DB_USER"),
		DBPassword:      get("DB_PASSWORD"),
		DBName:          required("DB_NAME"),
		DBSslMode:       get("DB_SSLMODE"),
		DBMaxOpenConns:  integer("DB_MAX_OPEN_CONNS"),
		RedisAddr:       get("REDIS_ADDR"),
		RedisManagerTTL: duration("REDIS_MANAGERS_TTL"),
		RabbitMQURL:     get("RABBITMQ_URL"),
		RabbitExchange:  get("RABBITMQ_EXCHANGE"),
		JWTSecret:       required("JWT_SECRET"),
		JWTIssuer:       get("JWT_ISSUER"),
		JWTAudience:     get("JWT_AUDIENCE"),
		JWTExpiresIn:    duration("JWT_EXPIRES_IN"),
		OutboxSchedule:  get("OUTBOX_SCHEDULE"),
		OutboxBatchSize: integer("OUTBOX_BATCH_SIZE"),
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Database:     c.DBName,
		SSLMode:      c.DBSslMode,
		MaxOpenConns: c.DBMaxOpenConns,
	}
}

func (c Config) Tokens() tokens.Config {
	return tokens.Config{
		Secret:    c.JWTSecret,
		Issuer:    c.JWTIssuer,
		Audience:  c.JWTAudience,
		ExpiresIn: c.JWTExpiresIn,
	}
}

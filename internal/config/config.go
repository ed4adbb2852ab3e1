package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings, loaded once at startup
// and injected into the components that need them.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers string
	KafkaTopic   string

	NewsAPIBaseURL    string
	NewsAPIKey        string
	NewsTimeoutSecond int
	NewsCacheExpSec   int

	JWTSecretKey string
	JWTExpSecond int
}

// Load reads the env file at path (missing file is not an error) and
// builds the configuration from environment variables with defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:          getEnv("APP_HOST", "localhost"),
		AppPort:          getEnv("APP_PORT", "8080"),
		LogLevel:         getEnv("APP_LOG_LEVEL", "info"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "database"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:     getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "saved-articles"),
		NewsAPIBaseURL:   getEnv("NEWSAPI_BASE_URL", "https://newsapi.org/v2"),
		NewsAPIKey:       getEnv("NEWSAPI_KEY", ""),
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PostgresPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}
	if cfg.NewsTimeoutSecond, err = strconv.Atoi(getEnv("NEWSAPI_TIMEOUT_SECOND", "15")); err != nil {
		return nil, err
	}
	if cfg.NewsCacheExpSec, err = strconv.Atoi(getEnv("NEWS_CACHE_EXP_SECOND", "60")); err != nil {
		return nil, err
	}
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Embedding      EmbeddingConfig
	Adzuna         AdzunaConfig
	Catalog        CatalogConfig
	Recommendation RecommendationConfig
	Scheduler      SchedulerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins []string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type EmbeddingConfig struct {
	// Provider is one of openai, gemini, ollama, hash.
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	Dimension int
	Cache     bool
}

type AdzunaConfig struct {
	AppID          string
	AppKey         string
	Query          string
	ResultsPerPage int
	BaseURL        string
}

type CatalogConfig struct {
	APILayerKey      string
	APILayerBaseURL  string
	CountriesBaseURL string
}

type RecommendationConfig struct {
	TopK            int
	SnapshotLimit   int
	DefaultLocation string
}

type SchedulerConfig struct {
	// RefreshIntervalHours of 0 disables the scheduler.
	RefreshIntervalHours int
}

const (
	defaultCORSOrigin      = "https://career-ease-frontend.vercel.app"
	defaultDefaultLocation = "us"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		CORSOrigins: splitList(opt("CORS_ALLOW_ORIGINS")),
	}
	if len(cfg.App.CORSOrigins) == 0 {
		cfg.App.CORSOrigins = []string{defaultCORSOrigin}
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  stringOrDefault(opt("DB_SSL_MODE"), "disable"),

		ConnectTimeout:        secondsOrDefault(opt("DB_CONNECT_TIMEOUT_SECONDS"), 5*time.Second),
		PoolMaxConns:          int32(intOrDefault(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns:          int32(intOrDefault(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime:   secondsOrDefault(opt("DB_POOL_MAX_CONN_LIFETIME_SECONDS"), 0),
		PoolMaxConnIdleTime:   secondsOrDefault(opt("DB_POOL_MAX_CONN_IDLE_SECONDS"), 0),
		PoolHealthCheckPeriod: secondsOrDefault(opt("DB_POOL_HEALTH_CHECK_SECONDS"), 0),
	}

	cfg.Redis = RedisConfig{
		Host:     stringOrDefault(opt("REDIS_HOST"), "localhost"),
		Port:     stringOrDefault(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      secondsOrDefault(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.Embedding = EmbeddingConfig{
		Provider:  strings.ToLower(stringOrDefault(opt("EMBEDDING_PROVIDER"), "ollama")),
		Model:     opt("EMBEDDING_MODEL"),
		APIKey:    opt("EMBEDDING_API_KEY"),
		BaseURL:   opt("EMBEDDING_BASE_URL"),
		Dimension: intOrDefault(opt("EMBEDDING_DIMENSION"), 0),
		Cache:     boolOrDefault(opt("EMBEDDING_CACHE"), true),
	}
	switch cfg.Embedding.Provider {
	case "openai", "gemini":
		if cfg.Embedding.APIKey == "" {
			missing = append(missing, "EMBEDDING_API_KEY")
		}
	case "ollama", "hash":
	default:
		return Config{}, fmt.Errorf("unsupported EMBEDDING_PROVIDER %q", cfg.Embedding.Provider)
	}

	cfg.Adzuna = AdzunaConfig{
		AppID:          opt("ADZUNA_APP_ID"),
		AppKey:         opt("ADZUNA_APP_KEY"),
		Query:          stringOrDefault(opt("ADZUNA_QUERY"), "software engineer"),
		ResultsPerPage: intOrDefault(opt("ADZUNA_RESULTS_PER_PAGE"), 20),
		BaseURL:        opt("ADZUNA_BASE_URL"),
	}

	cfg.Catalog = CatalogConfig{
		APILayerKey:      opt("APILAYER_API_KEY"),
		APILayerBaseURL:  opt("APILAYER_BASE_URL"),
		CountriesBaseURL: opt("RESTCOUNTRIES_BASE_URL"),
	}

	cfg.Recommendation = RecommendationConfig{
		TopK:            intOrDefault(opt("RECOMMEND_TOP_K"), 5),
		SnapshotLimit:   intOrDefault(opt("RECOMMEND_SNAPSHOT_LIMIT"), 100),
		DefaultLocation: strings.ToLower(stringOrDefault(opt("RECOMMEND_DEFAULT_LOCATION"), defaultDefaultLocation)),
	}

	cfg.Scheduler = SchedulerConfig{
		RefreshIntervalHours: intOrDefault(opt("CATALOG_REFRESH_INTERVAL_HOURS"), 24),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func stringOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func secondsOrDefault(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func boolOrDefault(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

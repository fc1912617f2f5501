package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Storage   StorageConfig
	Catalog   CatalogConfig
	View      ViewConfig
	Toasts    ToastConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Export    ExportConfig
}

// StorageConfig locates the durable key-value file.
type StorageConfig struct {
	DataDir  string
	FileName string
}

// CatalogConfig tunes the simulated course catalog fetch.
type CatalogConfig struct {
	FetchDelay  time.Duration
	FailureRate float64
}

// ViewConfig governs the student table view.
type ViewConfig struct {
	PageSize int
}

// ToastConfig sets notification defaults.
type ToastConfig struct {
	DefaultDuration time.Duration
}

// DashboardConfig governs dashboard aggregate caching.
type DashboardConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig controls roster export rendering.
type ExportConfig struct {
	Title string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Storage = StorageConfig{
		DataDir:  v.GetString("STORAGE_DATA_DIR"),
		FileName: v.GetString("STORAGE_FILE_NAME"),
	}

	failureRate := v.GetFloat64("CATALOG_FAILURE_RATE")
	if failureRate < 0 || failureRate > 1 {
		failureRate = 0.05
	}
	cfg.Catalog = CatalogConfig{
		FetchDelay:  parseDuration(v.GetString("CATALOG_FETCH_DELAY"), 800*time.Millisecond),
		FailureRate: failureRate,
	}

	pageSize := v.GetInt("VIEW_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 10
	}
	cfg.View = ViewConfig{PageSize: pageSize}

	cfg.Toasts = ToastConfig{
		DefaultDuration: parseDuration(v.GetString("TOAST_DEFAULT_DURATION"), 4*time.Second),
	}

	cfg.Dashboard = DashboardConfig{
		CacheEnabled: v.GetBool("DASHBOARD_CACHE_ENABLED"),
		CacheTTL:     parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{Title: v.GetString("EXPORT_TITLE")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORAGE_DATA_DIR", "./data")
	v.SetDefault("STORAGE_FILE_NAME", "dashboard.json")

	v.SetDefault("CATALOG_FETCH_DELAY", "800ms")
	v.SetDefault("CATALOG_FAILURE_RATE", 0.05)

	v.SetDefault("VIEW_PAGE_SIZE", 10)
	v.SetDefault("TOAST_DEFAULT_DURATION", "4s")

	v.SetDefault("DASHBOARD_CACHE_ENABLED", false)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("EXPORT_TITLE", "Student Roster")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

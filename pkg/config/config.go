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

	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Cache    CacheConfig
	Solver   SolverConfig
	Analysis AnalysisConfig
	Exports  ExportsConfig
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

// CacheConfig tunes retention of analyzed solutions.
type CacheConfig struct {
	SolutionTTL time.Duration
}

// SolverConfig locates the external solver gateway used for comparisons.
type SolverConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
	MaxBatchSize int
}

// AnalysisConfig tunes the analysis passes.
type AnalysisConfig struct {
	OvertimeToleranceHours float64
	ShiftWishPolicy        string
}

// ExportsConfig controls rendered schedule exports.
type ExportsConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
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

	cfg.Cache = CacheConfig{
		SolutionTTL: parseDuration(v.GetString("SOLUTION_CACHE_TTL"), 12*time.Hour),
	}

	cfg.Solver = SolverConfig{
		BaseURL:      v.GetString("SOLVER_BASE_URL"),
		FetchTimeout: parseDuration(v.GetString("SOLVER_FETCH_TIMEOUT"), 10*time.Second),
		MaxBatchSize: v.GetInt("SOLVER_MAX_BATCH_SIZE"),
	}

	cfg.Analysis = AnalysisConfig{
		OvertimeToleranceHours: v.GetFloat64("ANALYSIS_OVERTIME_TOLERANCE_HOURS"),
		ShiftWishPolicy:        v.GetString("ANALYSIS_SHIFT_WISH_POLICY"),
	}

	cfg.Exports = ExportsConfig{
		StorageDir:      v.GetString("EXPORTS_STORAGE_DIR"),
		SignedURLSecret: v.GetString("EXPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("EXPORTS_SIGNED_URL_TTL"), 30*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SOLUTION_CACHE_TTL", "12h")

	v.SetDefault("SOLVER_BASE_URL", "http://localhost:5000")
	v.SetDefault("SOLVER_FETCH_TIMEOUT", "10s")
	v.SetDefault("SOLVER_MAX_BATCH_SIZE", 16)

	v.SetDefault("ANALYSIS_OVERTIME_TOLERANCE_HOURS", 7.67)
	v.SetDefault("ANALYSIS_SHIFT_WISH_POLICY", "avoid")

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_SIGNED_URL_SECRET", "dev_exports_secret")
	v.SetDefault("EXPORTS_SIGNED_URL_TTL", "30m")
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

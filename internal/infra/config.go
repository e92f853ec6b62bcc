package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"promptimage/internal/pipeline"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	Port              string
	AllowedOrigin     string
	DefaultLocale     string
	PromptProvider    string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	OpenAIOrg         string
	OpenAIImageModel  string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	PipelineShape     string
	GateMinWords      int
	GateExtraKeywords []string
	UpstreamTimeout   time.Duration
	LogFile           string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
	RateLimitPerMin   int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "5000"),
		AllowedOrigin:     getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		DefaultLocale:     getEnv("DEFAULT_LOCALE", "ko"),
		PromptProvider:    strings.ToLower(getEnv("PROMPT_PROVIDER", "openai")),
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIOrg:         os.Getenv("OPENAI_ORG"),
		OpenAIImageModel:  os.Getenv("OPENAI_IMAGE_MODEL"),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		PipelineShape:     getEnv("PIPELINE_SHAPE", pipeline.ShapeTranslate),
		GateMinWords:      getEnvInt("GATE_MIN_WORDS", pipeline.DefaultMinWords),
		GateExtraKeywords: splitList(os.Getenv("GATE_EXTRA_KEYWORDS")),
		UpstreamTimeout:   time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 60)),
		LogFile:           os.Getenv("LOG_FILE"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	switch cfg.PromptProvider {
	case "openai":
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when PROMPT_PROVIDER=gemini")
		}
	default:
		return nil, fmt.Errorf("unsupported PROMPT_PROVIDER %q", cfg.PromptProvider)
	}

	if _, err := pipeline.Preset(cfg.PipelineShape, cfg.GateMinWords); err != nil {
		return nil, fmt.Errorf("PIPELINE_SHAPE: %w", err)
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

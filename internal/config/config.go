package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transport values accepted by MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	Port        string
	Environment string
	Transport   string
	CORSOrigins string

	// Pixabay upstream
	PixabayAPIKey       string
	PixabayImageBaseURL string
	PixabayVideoBaseURL string
	DefaultLocale       string
	HTTPTimeout         time.Duration

	// File logging (stdio transport owns stdout, so logs go to files)
	LogDir      string
	LogMaxFiles int
}

func Load() (*Config, error) {
	apiKey := os.Getenv("PIXABAY_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("PIXABAY_API_KEY is not set")
	}

	transport := getEnv("MCP_TRANSPORT", TransportStdio)
	if transport != TransportStdio && transport != TransportHTTP {
		return nil, fmt.Errorf("unsupported MCP_TRANSPORT %q (want %q or %q)",
			transport, TransportStdio, TransportHTTP)
	}

	timeoutSecs, err := getEnvInt("PIXABAY_HTTP_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}

	maxLogFiles, err := getEnvInt("LOG_MAX_FILES", 5)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                getEnv("PORT", "8084"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		Transport:           transport,
		CORSOrigins:         getEnv("CORS_ORIGINS", "http://localhost:3000"),
		PixabayAPIKey:       apiKey,
		PixabayImageBaseURL: getEnv("PIXABAY_IMAGE_BASE_URL", "https://pixabay.com/api/"),
		PixabayVideoBaseURL: getEnv("PIXABAY_VIDEO_BASE_URL", "https://pixabay.com/api/videos/"),
		DefaultLocale:       getEnv("PIXABAY_DEFAULT_LOCALE", "en"),
		HTTPTimeout:         time.Duration(timeoutSecs) * time.Second,
		LogDir:              getEnv("LOG_DIR", "logs"),
		LogMaxFiles:         maxLogFiles,
	}, nil
}

// IsDevelopment reports whether debug-level logging and other dev
// conveniences should be enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "prod"
}

// AllowedOrigins splits CORS_ORIGINS into a trimmed, non-empty list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

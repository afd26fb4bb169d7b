package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	MetricsDiskPath      string
	MetricsSampleSeconds int
	MetricsHistorySize   int
	RecentHistoryLimit   int
	CorsOrigins          []string
}

func Load() Config {
	cfg := Config{
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "/"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		MetricsHistorySize:   envOrInt("METRICS_HISTORY_SIZE", 500),
		RecentHistoryLimit:   envOrInt("RECENT_HISTORY_LIMIT", 3),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
	// The sample interval feeds a ticker, which rejects non-positive periods.
	if cfg.MetricsSampleSeconds < 1 {
		cfg.MetricsSampleSeconds = 5
	}
	return cfg
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"METRICS_DISK_PATH", "METRICS_SAMPLE_INTERVAL", "METRICS_HISTORY_SIZE", "RECENT_HISTORY_LIMIT", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.MetricsSampleSeconds != 5 {
		t.Fatalf("expected default sample interval 5, got %d", cfg.MetricsSampleSeconds)
	}
	if cfg.MetricsHistorySize != 500 {
		t.Fatalf("expected default history size 500, got %d", cfg.MetricsHistorySize)
	}
	if cfg.RecentHistoryLimit != 3 {
		t.Fatalf("expected default recent limit 3, got %d", cfg.RecentHistoryLimit)
	}
	if cfg.CorsOrigins != nil {
		t.Fatalf("expected no CORS origins, got %v", cfg.CorsOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("METRICS_SAMPLE_INTERVAL", "30")
	t.Setenv("RECENT_HISTORY_LIMIT", "junk")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	cfg := Load()
	if cfg.MetricsSampleSeconds != 30 {
		t.Fatalf("expected sample interval 30, got %d", cfg.MetricsSampleSeconds)
	}
	if cfg.RecentHistoryLimit != 3 {
		t.Fatalf("unparseable int should fall back to 3, got %d", cfg.RecentHistoryLimit)
	}
	if len(cfg.CorsOrigins) != 2 || cfg.CorsOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CorsOrigins)
	}
}

func TestLoadClampsSampleInterval(t *testing.T) {
	for _, raw := range []string{"0", "-7"} {
		t.Setenv("METRICS_SAMPLE_INTERVAL", raw)
		if got := Load().MetricsSampleSeconds; got != 5 {
			t.Fatalf("interval %q must clamp to 5, got %d", raw, got)
		}
	}
}

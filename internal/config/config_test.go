package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.MaxFileSizeMB != 50 {
		t.Fatalf("expected 50MB default, got %d", cfg.MaxFileSizeMB)
	}
	if cfg.MaxTextChars != 100000 {
		t.Fatalf("expected 100000 char default, got %d", cfg.MaxTextChars)
	}
	if cfg.MinTextChars != 10 {
		t.Fatalf("expected 10 char minimum, got %d", cfg.MinTextChars)
	}
	if got := cfg.MaxFileSizeBytes(); got != 50*1024*1024 {
		t.Fatalf("expected 50MB in bytes, got %d", got)
	}
	if !cfg.BreakerEnabled {
		t.Fatalf("expected breaker enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("MAX_FILE_SIZE_MB", "5")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("EXTRACT_WORKERS", "not-a-number")

	cfg := Load()
	if cfg.APIPort != "9999" {
		t.Fatalf("expected override, got %q", cfg.APIPort)
	}
	if cfg.MaxFileSizeMB != 5 {
		t.Fatalf("expected 5, got %d", cfg.MaxFileSizeMB)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("expected breaker disabled")
	}
	if cfg.ExtractWorkers != 4 {
		t.Fatalf("expected fallback on unparsable value, got %d", cfg.ExtractWorkers)
	}
}

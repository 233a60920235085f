package config_test

import (
	"testing"
	"time"

	"github.com/mwaldren/chessmate-backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.ClockTime != 10*time.Minute {
		t.Errorf("ClockTime = %v, want 10m", cfg.ClockTime)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHESSMATE_ADDR", ":8080")
	t.Setenv("CHESSMATE_CLOCK_TIME", "3m")
	t.Setenv("CHESSMATE_ALLOW_ORIGINS", "https://example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.ClockTime != 3*time.Minute {
		t.Errorf("ClockTime = %v, want 3m", cfg.ClockTime)
	}
	if cfg.AllowOrigins != "https://example.com" {
		t.Errorf("AllowOrigins = %q", cfg.AllowOrigins)
	}
}

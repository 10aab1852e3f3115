package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Stops != 7 || cfg.OfficeTier != 1 || cfg.Approval != 50 || cfg.Chaos != 1 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Candidate != "Pat Quinn" {
		t.Fatalf("expected default candidate, got %q", cfg.Candidate)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", lvl)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRAILSIM_SEED", "99")
	t.Setenv("TRAILSIM_STOPS", "3")
	t.Setenv("TRAILSIM_CANDIDATE", "Dana McAllister")
	t.Setenv("TRAILSIM_OFFICE_TIER", "4")
	t.Setenv("TRAILSIM_CHAOS", "2.5")
	t.Setenv("TRAILSIM_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Seed != 99 || cfg.Stops != 3 || cfg.OfficeTier != 4 || cfg.Chaos != 2.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Candidate != "Dana McAllister" {
		t.Fatalf("expected candidate from env, got %q", cfg.Candidate)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", lvl)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		key, val, want string
	}{
		{"TRAILSIM_STOPS", "many", "parse env:"},
		{"TRAILSIM_STOPS", "0", "TRAILSIM_STOPS"},
		{"TRAILSIM_OFFICE_TIER", "6", "TRAILSIM_OFFICE_TIER"},
		{"TRAILSIM_APPROVAL", "120", "TRAILSIM_APPROVAL"},
		{"TRAILSIM_CHAOS", "-1", "TRAILSIM_CHAOS"},
		{"TRAILSIM_LOG_LEVEL", "loud", "TRAILSIM_LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

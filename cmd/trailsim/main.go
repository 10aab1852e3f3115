// Command trailsim runs a campaign on the trail with an auto-player and prints
// the resulting chronicle.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/talgya/campaign-trail/internal/api"
	"github.com/talgya/campaign-trail/internal/config"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trailsim: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(newLogger(level))

	slog.Info("campaign trail simulator",
		"candidate", cfg.Candidate,
		"tier", cfg.OfficeTier,
		"approval", cfg.Approval,
		"stops", cfg.Stops,
		"chaos", cfg.Chaos,
	)

	// ── Random source ────────────────────────────────────────────────
	var src entropy.Source
	if client := entropy.NewClient(cfg.RandomOrgKey); client != nil {
		src = client
		slog.Info("random source", "kind", "random.org")
	} else {
		src = entropy.NewSeeded(cfg.Seed)
		slog.Info("random source", "kind", "seeded", "seed", cfg.Seed)
	}

	// ── Journal ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "" {
		os.MkdirAll(dir, 0755)
	}
	journal, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open journal", "error", err)
		os.Exit(1)
	}
	defer journal.Close()
	slog.Info("journal opened", "path", cfg.DBPath)

	// ── Signals ──────────────────────────────────────────────────────
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Campaign ─────────────────────────────────────────────────────
	report, err := runCampaign(cfg, src, journal, ctx.Done())
	if err != nil {
		slog.Error("campaign failed", "error", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stdout, report)

	if cfg.ReportHTML != "" {
		if err := writeHTML(cfg.ReportHTML, report); err != nil {
			slog.Error("failed to write html report", "error", err)
			os.Exit(1)
		}
		slog.Info("html report written", "path", cfg.ReportHTML)
	}

	// ── Journal API ──────────────────────────────────────────────────
	if cfg.HTTPAddr != "" {
		srv := &api.Server{
			Store:   journal,
			Addr:    cfg.HTTPAddr,
			Limiter: api.NewRateLimiter(120, time.Minute),
		}
		if err := srv.Run(ctx); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}
}

// newLogger writes text to a terminal and JSON everywhere else. Logs go to
// stderr so the chronicle on stdout can be piped.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

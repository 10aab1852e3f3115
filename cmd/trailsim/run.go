package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/talgya/campaign-trail/internal/campaign"
	"github.com/talgya/campaign-trail/internal/config"
	"github.com/talgya/campaign-trail/internal/engine"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/persistence"
	"github.com/talgya/campaign-trail/internal/press"
	"github.com/talgya/campaign-trail/internal/reporter"
	"github.com/talgya/campaign-trail/internal/trail"
)

// runCampaign plays cfg.Stops stops with the auto-player, journaling each
// one, and returns the markdown chronicle. Closing stop ends the campaign
// after the stop in progress.
func runCampaign(cfg config.Config, src entropy.Source, journal *persistence.Journal, stop <-chan struct{}) (string, error) {
	camp := campaign.New(cfg.Candidate, cfg.OfficeTier, cfg.Approval, cfg.Seed)
	strategy := campaign.DefaultStrategy()

	ecfg := engine.DefaultConfig()
	ecfg.ChaosMultiplier = cfg.Chaos
	mgr, err := engine.New(ecfg, src, camp, nil, engine.LogSink{})
	if err != nil {
		return "", err
	}

	rep := mgr.Reporter()
	slog.Info("reporter assigned", "name", rep.Name, "outlet", rep.Outlet, "personality", rep.Personality)

	for i := 0; i < cfg.Stops; i++ {
		select {
		case <-stop:
			slog.Info("campaign cut short", "stops", i)
			return chronicle(camp, mgr), nil
		default:
		}

		drift := camp.Advance()
		slog.Debug("news cycle", "day", camp.Day, "drift", fmt.Sprintf("%+.2f", drift), "approval", camp.Rating)

		t := trail.EventType(entropy.Intn(src, trail.NumEventTypes))
		res, err := playStop(mgr, strategy, t)
		if err != nil {
			return "", fmt.Errorf("day %d: %w", camp.Day, err)
		}
		if camp.ApplyResult(res) {
			slog.Info("moving up", "tier", camp.Tier)
		}

		events := mgr.CompletedEvents()
		if err := journal.SaveEvent(events[len(events)-1]); err != nil {
			return "", fmt.Errorf("journal stop: %w", err)
		}

		if story, ok := rep.Publish(); ok {
			camp.AbsorbStory(story)
		}
		status := mgr.ReporterStatus()
		if status.Warning != "" {
			slog.Warn("reporter", "warning", status.Warning)
		}
		if err := journal.SaveReporter(camp.Day, status); err != nil {
			return "", fmt.Errorf("journal reporter: %w", err)
		}
	}

	slog.Info("campaign finished", "approval", fmt.Sprintf("%.1f", camp.Rating), "tier", camp.Tier,
		"stories", camp.StoriesAbsorbed)
	return chronicle(camp, mgr), nil
}

// playStop drains one stop, answering every encounter and ambush question
// with the strategy's pick.
func playStop(mgr *engine.Manager, strategy campaign.Strategy, t trail.EventType) (*engine.Result, error) {
	if _, err := mgr.StartEvent(t); err != nil {
		return nil, err
	}
	for {
		if amb := mgr.CurrentAmbushEncounter(); amb != nil {
			choice, ok := strategy.Pick(amb)
			if !ok {
				return mgr.ForceCompleteEvent()
			}
			if _, err := mgr.ResolveReporterAmbush(choice); err != nil {
				return nil, err
			}
			continue
		}
		if !mgr.HasMoreEncounters() {
			break
		}
		enc, err := mgr.NextEncounter()
		if err != nil {
			return nil, err
		}
		if enc == nil {
			continue
		}
		choice, ok := strategy.Pick(enc)
		if !ok {
			return mgr.ForceCompleteEvent()
		}
		if _, err := mgr.ResolveCurrentEncounter(choice); err != nil {
			return nil, err
		}
	}
	return mgr.CompleteEvent()
}

func chronicle(camp *campaign.Campaign, mgr *engine.Manager) string {
	data := &press.ChronicleData{
		Candidate: camp.Name,
		Approval:  camp.Rating,
		Reporter:  reporterSummary(mgr.ReporterStatus()),
	}
	for _, ev := range mgr.CompletedEvents() {
		res := ev.Result
		s := press.StopSummary{
			Day:              ev.Day,
			Event:            ev.Type.String(),
			Location:         ev.Location,
			Attendance:       ev.ActualAttendance,
			Hostility:        ev.Hostility.String(),
			Outcome:          res.OverallOutcome.String(),
			HeadlineOfTheDay: res.HeadlineOfTheDay,
			Headlines:        res.Headlines,
			Moments:          res.MemorableMoments,
			NetTrust:         res.NetTrust,
			NetMedia:         res.NetMedia,
			Ambushed:         res.AmbushOccurred,
		}
		for _, k := range res.RevealedSecrets {
			s.Secrets = append(s.Secrets, k.String())
		}
		data.Stops = append(data.Stops, s)
	}
	return press.Chronicle(data)
}

func reporterSummary(st reporter.Status) press.ReporterSummary {
	r := st.Reporter
	return press.ReporterSummary{
		Name:         r.Name,
		Outlet:       r.Outlet,
		Relationship: r.Relationship,
		Topic:        r.Investigation.Topic.String(),
		Progress:     r.Investigation.Progress,
		Warning:      st.Warning,
		Stories:      r.Stories,
	}
}

func writeHTML(path, markdown string) error {
	md := goldmark.New(
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	var buf bytes.Buffer
	buf.WriteString("<!doctype html>\n<meta charset=\"utf-8\">\n<title>Campaign Chronicle</title>\n")
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

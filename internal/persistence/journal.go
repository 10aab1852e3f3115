// Package persistence keeps a SQLite journal of a campaign: completed stops,
// the headlines they produced, and snapshots of the reporter between stops.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/campaign-trail/internal/engine"
	"github.com/talgya/campaign-trail/internal/reporter"
)

// Journal wraps a SQLite connection.
type Journal struct {
	conn *sqlx.DB
}

// StopRow is one journaled stop.
type StopRow struct {
	ID         string `db:"id" json:"id"`
	Day        int    `db:"day" json:"day"`
	Type       string `db:"type" json:"type"`
	Location   string `db:"location" json:"location"`
	Hostility  string `db:"hostility" json:"hostility"`
	Attendance int    `db:"attendance" json:"attendance"`
	Outcome    string `db:"outcome" json:"outcome"`
	NetTrust   int    `db:"net_trust" json:"net_trust"`
	NetMedia   int    `db:"net_media" json:"net_media"`
	Headline   string `db:"headline" json:"headline"`
	Secrets    int    `db:"secrets" json:"secrets"`
	Ambushed   bool   `db:"ambushed" json:"ambushed"`
	Forced     bool   `db:"forced" json:"forced"`
}

// HeadlineRow is one headline from a journaled stop.
type HeadlineRow struct {
	StopID string `db:"stop_id" json:"stop_id"`
	Day    int    `db:"day" json:"day"`
	Text   string `db:"text" json:"text"`
}

// ReporterRow is one reporter snapshot.
type ReporterRow struct {
	Day          int    `db:"day" json:"day"`
	ReporterID   string `db:"reporter_id" json:"reporter_id"`
	Name         string `db:"name" json:"name"`
	Outlet       string `db:"outlet" json:"outlet"`
	Relationship int    `db:"relationship" json:"relationship"`
	Topic        string `db:"topic" json:"topic"`
	Progress     int    `db:"progress" json:"progress"`
	Ready        bool   `db:"ready" json:"ready"`
	Warning      string `db:"warning" json:"warning"`
}

// Open opens or creates a journal at the given path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS stops (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		type TEXT NOT NULL,
		location TEXT NOT NULL,
		hostility TEXT NOT NULL,
		attendance INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		net_trust INTEGER NOT NULL,
		net_media INTEGER NOT NULL,
		headline TEXT NOT NULL,
		secrets INTEGER NOT NULL,
		ambushed INTEGER NOT NULL,
		forced INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS headlines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stop_id TEXT NOT NULL REFERENCES stops(id),
		day INTEGER NOT NULL,
		text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reporter_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		reporter_id TEXT NOT NULL,
		name TEXT NOT NULL,
		outlet TEXT NOT NULL,
		relationship INTEGER NOT NULL,
		topic TEXT NOT NULL,
		progress INTEGER NOT NULL,
		ready INTEGER NOT NULL,
		warning TEXT NOT NULL,
		snapshot_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_headlines_day ON headlines(day);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// SaveEvent journals a completed stop and its headlines in one transaction.
// Saving the same stop twice replaces it.
func (j *Journal) SaveEvent(ev *engine.TrailEvent) error {
	if ev == nil || ev.Result == nil {
		return fmt.Errorf("save event: stop has no result")
	}
	res := ev.Result
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM headlines WHERE stop_id = ?", ev.ID); err != nil {
		return fmt.Errorf("clear headlines: %w", err)
	}
	_, err = tx.Exec(`INSERT OR REPLACE INTO stops
		(id, day, type, location, hostility, attendance, outcome, net_trust, net_media,
		 headline, secrets, ambushed, forced, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Day, ev.Type.String(), ev.Location, ev.Hostility.String(), ev.ActualAttendance,
		res.OverallOutcome.String(), res.NetTrust, res.NetMedia, res.HeadlineOfTheDay,
		res.SecretsRevealed, res.AmbushOccurred, res.Forced, string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("insert stop %s: %w", ev.ID, err)
	}

	stmt, err := tx.Preparex("INSERT INTO headlines (stop_id, day, text) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare headlines: %w", err)
	}
	defer stmt.Close()

	for _, h := range res.Headlines {
		if _, err := stmt.Exec(ev.ID, ev.Day, h); err != nil {
			return fmt.Errorf("insert headline: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stop %s: %w", ev.ID, err)
	}
	slog.Debug("stop journaled", "day", ev.Day, "id", ev.ID, "headlines", len(res.Headlines))
	return nil
}

// SaveReporter snapshots the reporter after a campaign day.
func (j *Journal) SaveReporter(day int, st reporter.Status) error {
	snap, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal reporter: %w", err)
	}
	r := st.Reporter
	_, err = j.conn.Exec(`INSERT INTO reporter_snapshots
		(day, reporter_id, name, outlet, relationship, topic, progress, ready, warning, snapshot_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		day, r.ID, r.Name, r.Outlet, r.Relationship, r.Investigation.Topic.String(),
		r.Investigation.Progress, r.Investigation.ReadyToPublish, st.Warning, string(snap),
	)
	if err != nil {
		return fmt.Errorf("insert reporter snapshot: %w", err)
	}
	return nil
}

// RecentStops returns the most recent stops, newest first.
func (j *Journal) RecentStops(limit int) ([]StopRow, error) {
	var rows []StopRow
	err := j.conn.Select(&rows,
		`SELECT id, day, type, location, hostility, attendance, outcome, net_trust, net_media,
		        headline, secrets, ambushed, forced
		 FROM stops ORDER BY day DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent stops: %w", err)
	}
	return rows, nil
}

// RecentHeadlines returns the most recent headlines, newest first.
func (j *Journal) RecentHeadlines(limit int) ([]HeadlineRow, error) {
	var rows []HeadlineRow
	err := j.conn.Select(&rows,
		"SELECT stop_id, day, text FROM headlines ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent headlines: %w", err)
	}
	return rows, nil
}

// ReporterHistory returns the most recent reporter snapshots, newest first.
func (j *Journal) ReporterHistory(limit int) ([]ReporterRow, error) {
	var rows []ReporterRow
	err := j.conn.Select(&rows,
		`SELECT day, reporter_id, name, outlet, relationship, topic, progress, ready, warning
		 FROM reporter_snapshots ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("reporter history: %w", err)
	}
	return rows, nil
}

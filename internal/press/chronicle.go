package press

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// ChronicleData holds the raw data needed to write a campaign chronicle. It
// is decoupled from engine types so the host can fill it from a live run or
// from the journal.
type ChronicleData struct {
	Candidate string
	Approval  float64
	Stops     []StopSummary

	Reporter ReporterSummary
}

// StopSummary is a brief description of one completed campaign stop.
type StopSummary struct {
	Day        int
	Event      string
	Location   string
	Attendance int
	Hostility  string
	Outcome    string

	HeadlineOfTheDay string
	Headlines        []string
	Moments          []string
	Secrets          []string

	NetTrust int
	NetMedia int
	Ambushed bool
}

// ReporterSummary describes the campaign's reporter at the time of writing.
type ReporterSummary struct {
	Name         string
	Outlet       string
	Relationship int
	Topic        string
	Progress     int
	Warning      string
	Stories      []string
}

// Chronicle renders the campaign as a markdown digest.
func Chronicle(data *ChronicleData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# The %s Campaign Chronicle\n\n", data.Candidate)
	fmt.Fprintf(&b, "%s stops on the trail. Approval stands at %.1f%%.\n\n",
		humanize.Comma(int64(len(data.Stops))), data.Approval)

	for _, s := range data.Stops {
		fmt.Fprintf(&b, "## Day %d: %s at %s\n\n", s.Day, s.Event, s.Location)
		fmt.Fprintf(&b, "**%s**\n\n", s.HeadlineOfTheDay)
		fmt.Fprintf(&b, "- Crowd: %s (%s)\n", humanize.Comma(int64(s.Attendance)), s.Hostility)
		fmt.Fprintf(&b, "- Outcome: %s, trust %+d, media %+d\n", s.Outcome, s.NetTrust, s.NetMedia)
		if s.Ambushed {
			b.WriteString("- The reporter ambushed the candidate.\n")
		}
		b.WriteString("\n")

		if len(s.Headlines) > 0 {
			b.WriteString("### In the papers\n\n")
			for i, h := range s.Headlines {
				if i >= 5 {
					fmt.Fprintf(&b, "...and %d more.\n", len(s.Headlines)-5)
					break
				}
				fmt.Fprintf(&b, "- %s\n", h)
			}
			b.WriteString("\n")
		}

		if len(s.Secrets) > 0 {
			b.WriteString("### Secrets out\n\n")
			for _, sec := range s.Secrets {
				fmt.Fprintf(&b, "- %s\n", sec)
			}
			b.WriteString("\n")
		}

		if len(s.Moments) > 0 {
			b.WriteString("### Overheard\n\n")
			for i, m := range s.Moments {
				if i >= 3 {
					break
				}
				fmt.Fprintf(&b, "> %s\n\n", m)
			}
		}
	}

	r := data.Reporter
	if r.Name != "" {
		b.WriteString("## The Press Corps\n\n")
		fmt.Fprintf(&b, "%s of %s, relationship %+d.\n", r.Name, r.Outlet, r.Relationship)
		if r.Topic != "" {
			fmt.Fprintf(&b, "Investigating %s, %d%% complete.\n", strings.ToLower(r.Topic), r.Progress)
		}
		if r.Warning != "" {
			fmt.Fprintf(&b, "\n*%s*\n", r.Warning)
		}
		if len(r.Stories) > 0 {
			b.WriteString("\n")
			for i, st := range r.Stories {
				if i >= 5 {
					fmt.Fprintf(&b, "...and %d more.\n", len(r.Stories)-5)
					break
				}
				fmt.Fprintf(&b, "- %s\n", st)
			}
		}
	}

	return b.String()
}

package dash

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"sitewatch/internal/api"
)

const emptyState = "No sites are being monitored yet. Press a to add one."

var (
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorLine    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// statusText maps a raw status value to its display label. Anything the
// service has not classified yet reads as unknown.
func statusText(status string) string {
	switch status {
	case "online":
		return "connected"
	case "offline":
		return "disconnected"
	default:
		return "unknown"
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "online":
		return onlineStyle
	case "offline":
		return offlineStyle
	default:
		return unknownStyle
	}
}

// The service reports timestamps either in ISO-8601 or in SQLite's
// "YYYY-MM-DD HH:MM:SS" form.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// formatTimestamp renders a check timestamp for display. An absent value
// means the site was never checked; an unparseable one is shown as-is
// rather than blanked.
func formatTimestamp(ts string) string {
	if ts == "" {
		return "never"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return ts
}

func formatResponseTime(rt *float64) string {
	if rt == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3fs", *rt)
}

func monitorLabel(running bool) string {
	if running {
		return "stop monitor"
	}
	return "start monitor"
}

func monitorIndicator(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}

func indicatorStyle(running bool) lipgloss.Style {
	if running {
		return onlineStyle
	}
	return unknownStyle
}

// renderSites produces one card per site, in the order the service returned
// them. It is a pure function of its input.
func renderSites(sites []api.Site) []string {
	cards := make([]string, 0, len(sites))
	for _, s := range sites {
		cards = append(cards, renderCard(s))
	}
	return cards
}

func renderCard(s api.Site) string {
	var b strings.Builder
	b.WriteString(statusStyle(s.LastStatus).Render("●"))
	b.WriteString(" ")
	b.WriteString(s.URL)
	b.WriteString("  ")
	b.WriteString(statusStyle(s.LastStatus).Render(statusText(s.LastStatus)))
	b.WriteString("\n")
	b.WriteString("    last check: ")
	b.WriteString(formatTimestamp(s.LastChecked))
	b.WriteString("   response: ")
	b.WriteString(formatResponseTime(s.ResponseTime))
	if s.LastError != "" {
		b.WriteString("\n    ")
		b.WriteString(errorLine.Render("error: " + s.LastError))
	}
	return b.String()
}

// renderHistory renders the history overlay rows, newest first, matching
// the order the service returns.
func renderHistory(records []api.CheckRecord) []string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := fmt.Sprintf("%s  %-12s %s",
			formatTimestamp(r.CheckedAt),
			statusStyle(r.Status).Render(statusText(r.Status)),
			formatResponseTime(r.ResponseTime))
		if r.ErrorMessage != "" {
			line += "  " + r.ErrorMessage
		}
		lines = append(lines, line)
	}
	return lines
}

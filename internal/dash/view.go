package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"
)

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	legendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4"))
	infoNotice    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successNotice = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorNotice   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func noticeStyle(level severity) lipgloss.Style {
	switch level {
	case noticeSuccess:
		return successNotice
	case noticeError:
		return errorNotice
	default:
		return infoNotice
	}
}

// View renders the UI from the current state. All state lives on the model;
// nothing here mutates anything.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width == 0 {
		width = 80
	}
	centerLine := func(s string) string {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
	}

	var out strings.Builder
	fig := figure.NewFigure("sitewatch", "", true)
	for _, line := range strings.Split(fig.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out.WriteString(centerLine(bannerStyle.Render(line)))
		out.WriteString("\n")
	}
	out.WriteString(centerLine(legendStyle.Render(m.legend())))
	out.WriteString("\n\n")
	out.WriteString(centerLine(m.statusLine()))
	out.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		m.writeOverlay(&out, centerLine,
			"Add a site to monitor:",
			"URL: "+m.inputURL.View(),
			"Press Enter to confirm, Esc to cancel")
	case modeConfirmRemove:
		m.writeOverlay(&out, centerLine,
			fmt.Sprintf("Remove %s from monitoring? (y/n)", m.confirmURL))
	case modeStart:
		m.writeOverlay(&out, centerLine,
			"Start monitoring:",
			"Interval (s): "+m.inputInterval.View(),
			"Timeout (s):  "+m.inputTimeout.View(),
			"Press Tab to switch, Enter to start, Esc to cancel")
	case modeHistory:
		lines := append([]string{"Recent checks for " + m.historyURL + ":"}, renderHistory(m.history)...)
		if len(m.history) == 0 {
			lines = append(lines, "no checks recorded")
		}
		lines = append(lines, "", "Press Esc to close")
		m.writeOverlay(&out, centerLine, lines...)
	default:
		if len(m.sites) == 0 {
			out.WriteString(centerLine(emptyState))
			out.WriteString("\n")
			break
		}
		for i, card := range renderSites(m.sites) {
			for j, line := range strings.Split(card, "\n") {
				if i == m.cursor && j == 0 {
					line = selectedStyle.Render(line)
				}
				out.WriteString(centerLine(line))
				out.WriteString("\n")
			}
		}
	}

	if m.notice.text != "" {
		out.WriteString("\n")
		out.WriteString(centerLine(noticeStyle(m.notice.level).Render(m.notice.text)))
		out.WriteString("\n")
	}
	return out.String()
}

func (m Model) writeOverlay(out *strings.Builder, centerLine func(string) string, lines ...string) {
	for _, line := range lines {
		out.WriteString(centerLine(line))
		out.WriteString("\n")
	}
}

// legend doubles as the home of the check-all control: the label swaps to a
// busy indicator while a run is in flight and the key is ignored.
func (m Model) legend() string {
	check := "c check all"
	if m.checkBusy {
		check = "c checking..."
	}
	return fmt.Sprintf("a add   d delete   %s   m %s   h history   r reload   q quit",
		check, monitorLabel(m.running))
}

func (m Model) statusLine() string {
	return fmt.Sprintf("%d site(s) monitored   monitoring: %s",
		len(m.sites),
		indicatorStyle(m.running).Render(monitorIndicator(m.running)))
}

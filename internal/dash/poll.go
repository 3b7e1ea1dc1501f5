package dash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cadence is the active polling period: a slow idle pace while the backend
// is not monitoring, a fast one while it is.
type cadence int

const (
	cadenceIdle cadence = iota
	cadenceActive
)

const (
	idlePeriod   = 30 * time.Second
	activePeriod = 5 * time.Second
)

func (c cadence) period() time.Duration {
	if c == cadenceActive {
		return activePeriod
	}
	return idlePeriod
}

// pollTickMsg fires one polling cycle. gen identifies the tick chain it
// belongs to; a tick from a superseded chain is dropped without
// rescheduling, so at most one chain is ever live.
type pollTickMsg struct {
	gen int
}

// schedulePoll switches the polling cadence. Bumping the generation
// invalidates any tick already in flight before the new chain starts, so two
// chains can never overlap.
func (m *Model) schedulePoll(c cadence) tea.Cmd {
	m.cadence = c
	m.pollGen++
	return m.nextPoll()
}

// nextPoll continues the current chain at the current cadence.
func (m *Model) nextPoll() tea.Cmd {
	gen := m.pollGen
	return tea.Tick(m.cadence.period(), func(time.Time) tea.Msg {
		return pollTickMsg{gen: gen}
	})
}

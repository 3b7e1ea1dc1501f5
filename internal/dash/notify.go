package dash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type severity int

const (
	noticeInfo severity = iota
	noticeSuccess
	noticeError
)

// How long a notice stays visible unless superseded.
const noticeWindow = 4 * time.Second

// notice is the single transient message slot. seq ties a pending dismissal
// to the notice that scheduled it.
type notice struct {
	text  string
	level severity
	seq   int
}

type noticeExpiredMsg struct {
	seq int
}

// notify replaces whatever is in the slot and schedules a fresh dismissal.
// The bumped sequence number strands any dismissal already in flight, so
// the window always runs its full length from the latest call.
func (m *Model) notify(level severity, text string) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{text: text, level: level, seq: m.noticeSeq}
	seq := m.noticeSeq
	return tea.Tick(noticeWindow, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

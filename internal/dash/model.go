package dash

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"sitewatch/internal/api"
)

// mode enumerates the high-level states the dashboard can be in.
type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmRemove
	modeStart
	modeHistory
)

// Model holds all dashboard state for the bubbletea program.
type Model struct {
	svc Service
	log zerolog.Logger

	sites  []api.Site // last successfully loaded list, service order
	cursor int
	width  int
	height int
	mode   mode

	// Whether the backend's monitoring loop is running. Flipped only by a
	// successful start/stop result and by the initial status query.
	running bool

	cadence cadence
	pollGen int

	notice    notice
	noticeSeq int

	// fields used by the add and start-monitor forms
	inputURL      textinput.Model
	inputInterval textinput.Model
	inputTimeout  textinput.Model
	startFocus    int // 0 interval, 1 timeout

	confirmURL string // site pending removal confirmation

	historyURL string
	history    []api.CheckRecord

	// check-all is disabled while a run is in flight; the label swaps to a
	// busy indicator until checkDoneMsg restores it.
	checkBusy bool

	quitting bool
}

// New builds the dashboard. Polling starts once the initial monitor status
// query resolves.
func New(svc Service, logger zerolog.Logger) Model {
	return Model{
		svc:     svc,
		log:     logger,
		cadence: cadenceIdle,
	}
}

// Init implements tea.Model: load the list and ask the service whether its
// monitoring loop is running.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadSitesCmd(m.svc),
		monitorStatusCmd(m.svc),
	)
}

package dash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sitewatch/internal/api"
	"sitewatch/internal/config"
)

// Update implements tea.Model. Remote results and timer ticks arrive here
// regardless of the current mode; only key handling is modal.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pollTickMsg:
		if msg.gen != m.pollGen {
			// Tick from a superseded cadence; drop it, don't reschedule.
			return m, nil
		}
		return m, tea.Batch(loadSitesCmd(m.svc), m.nextPoll())

	case sitesMsg:
		if msg.err != nil {
			// Keep showing the last good list.
			m.log.Error().Err(msg.err).Msg("load sites failed")
			return m, m.notify(noticeError, "Failed to load sites")
		}
		m.sites = msg.sites
		if m.cursor >= len(m.sites) {
			m.cursor = max(len(m.sites)-1, 0)
		}
		return m, nil

	case monitorStatusMsg:
		if msg.err != nil {
			// Must not block first render; presume idle.
			m.log.Error().Err(msg.err).Msg("monitor status query failed")
			m.running = false
			return m, m.schedulePoll(cadenceIdle)
		}
		m.running = msg.running
		if m.running {
			return m, m.schedulePoll(cadenceActive)
		}
		return m, m.schedulePoll(cadenceIdle)

	case siteAddedMsg:
		if msg.err != nil {
			// Stay in the form so the input can be corrected.
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Failed to add site"))
		}
		m.inputURL.Reset()
		m.mode = modeList
		return m, tea.Batch(
			m.notify(noticeSuccess, "Added "+msg.url),
			loadSitesCmd(m.svc),
		)

	case siteRemovedMsg:
		if msg.err != nil {
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Failed to remove site"))
		}
		return m, tea.Batch(
			m.notify(noticeSuccess, "Removed "+msg.url),
			loadSitesCmd(m.svc),
		)

	case checkDoneMsg:
		// The control comes back whatever happened to the call.
		m.checkBusy = false
		if msg.err != nil {
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Check failed"))
		}
		return m, tea.Batch(
			m.notify(noticeSuccess, "All sites checked"),
			loadSitesCmd(m.svc),
		)

	case monitorStartedMsg:
		if msg.err != nil {
			// State and cadence stay as they were.
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Failed to start monitoring"))
		}
		m.running = true
		return m, tea.Batch(
			m.schedulePoll(cadenceActive),
			m.notify(noticeSuccess, fmt.Sprintf("Monitoring started (every %ds)", msg.interval)),
		)

	case monitorStoppedMsg:
		if msg.err != nil {
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Failed to stop monitoring"))
		}
		m.running = false
		return m, tea.Batch(
			m.schedulePoll(cadenceIdle),
			m.notify(noticeInfo, "Monitoring stopped"),
		)

	case historyMsg:
		if msg.err != nil {
			return m, m.notify(noticeError, api.ErrorMessage(msg.err, "Failed to load history"))
		}
		m.historyURL = msg.url
		m.history = msg.records
		m.mode = modeHistory
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.notice.seq {
			m.notice = notice{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.handleAddKey(msg)
	case modeConfirmRemove:
		return m.handleConfirmKey(msg)
	case modeStart:
		return m.handleStartKey(msg)
	case modeHistory:
		switch msg.String() {
		case "esc", "q", "h":
			m.mode = modeList
			m.history = nil
			m.historyURL = ""
		}
		return m, nil
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sites)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.inputURL = textinput.New()
		m.inputURL.Placeholder = "https://example.com"
		m.inputURL.Focus()
	case "d":
		if len(m.sites) == 0 {
			return m, nil
		}
		m.mode = modeConfirmRemove
		m.confirmURL = m.sites[m.cursor].URL
	case "c":
		if m.checkBusy {
			return m, nil
		}
		m.checkBusy = true
		return m, checkAllCmd(m.svc)
	case "m":
		if m.running {
			return m, stopMonitorCmd(m.svc)
		}
		m.mode = modeStart
		m.inputInterval = textinput.New()
		m.inputInterval.Placeholder = strconv.Itoa(config.DefaultInterval)
		m.inputInterval.Focus()
		m.inputTimeout = textinput.New()
		m.inputTimeout.Placeholder = strconv.Itoa(config.DefaultTimeout)
		m.startFocus = 0
	case "r":
		return m, loadSitesCmd(m.svc)
	case "h":
		if len(m.sites) == 0 {
			return m, nil
		}
		return m, historyCmd(m.svc, m.sites[m.cursor].URL, historyLimit)
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.inputURL.Value())
		if raw == "" {
			// No remote call for an empty URL.
			return m, m.notify(noticeError, "URL is required")
		}
		return m, addSiteCmd(m.svc, raw)
	}
	var cmd tea.Cmd
	m.inputURL, cmd = m.inputURL.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		url := m.confirmURL
		m.mode = modeList
		m.confirmURL = ""
		return m, removeSiteCmd(m.svc, url)
	case "n", "esc":
		// Declined: no call, nothing changes.
		m.mode = modeList
		m.confirmURL = ""
	}
	return m, nil
}

func (m Model) handleStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab":
		if m.startFocus == 0 {
			m.startFocus = 1
			m.inputInterval.Blur()
			m.inputTimeout.Focus()
		} else {
			m.startFocus = 0
			m.inputTimeout.Blur()
			m.inputInterval.Focus()
		}
		return m, nil
	case "enter":
		cfg := config.ResolveMonitor(m.inputInterval.Value(), m.inputTimeout.Value())
		m.mode = modeList
		return m, startMonitorCmd(m.svc, cfg)
	}
	var cmd tea.Cmd
	if m.startFocus == 0 {
		m.inputInterval, cmd = m.inputInterval.Update(msg)
	} else {
		m.inputTimeout, cmd = m.inputTimeout.Update(msg)
	}
	return m, cmd
}

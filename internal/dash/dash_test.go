package dash

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"sitewatch/internal/api"
)

// stubService is a scripted Service. Unset functions succeed with zero
// values; every call is recorded.
type stubService struct {
	listFn    func() ([]api.Site, error)
	addFn     func(url string) (string, error)
	removeFn  func(url string) error
	checkFn   func() error
	startFn   func(interval, timeout int) error
	stopFn    func() error
	statusFn  func() (bool, error)
	historyFn func(url string, limit int) ([]api.CheckRecord, error)

	listCalls    int
	addCalls     int
	removeCalls  int
	checkCalls   int
	startCalls   int
	stopCalls    int
	statusCalls  int
	historyCalls int

	lastAddURL    string
	lastRemoveURL string
	lastInterval  int
	lastTimeout   int
}

func (s *stubService) ListSites(context.Context) ([]api.Site, error) {
	s.listCalls++
	if s.listFn != nil {
		return s.listFn()
	}
	return nil, nil
}

func (s *stubService) AddSite(_ context.Context, url string) (string, error) {
	s.addCalls++
	s.lastAddURL = url
	if s.addFn != nil {
		return s.addFn(url)
	}
	return url, nil
}

func (s *stubService) RemoveSite(_ context.Context, url string) error {
	s.removeCalls++
	s.lastRemoveURL = url
	if s.removeFn != nil {
		return s.removeFn(url)
	}
	return nil
}

func (s *stubService) CheckAll(context.Context) error {
	s.checkCalls++
	if s.checkFn != nil {
		return s.checkFn()
	}
	return nil
}

func (s *stubService) StartMonitor(_ context.Context, interval, timeout int) error {
	s.startCalls++
	s.lastInterval = interval
	s.lastTimeout = timeout
	if s.startFn != nil {
		return s.startFn(interval, timeout)
	}
	return nil
}

func (s *stubService) StopMonitor(context.Context) error {
	s.stopCalls++
	if s.stopFn != nil {
		return s.stopFn()
	}
	return nil
}

func (s *stubService) MonitorStatus(context.Context) (bool, error) {
	s.statusCalls++
	if s.statusFn != nil {
		return s.statusFn()
	}
	return false, nil
}

func (s *stubService) SiteHistory(_ context.Context, url string, limit int) ([]api.CheckRecord, error) {
	s.historyCalls++
	if s.historyFn != nil {
		return s.historyFn(url, limit)
	}
	return nil, nil
}

func newTestModel(svc Service) Model {
	return New(svc, zerolog.Nop())
}

// apply runs one message through Update and hands back the concrete model.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	res, ok := updated.(Model)
	require.True(t, ok)
	return res, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func siteList(urls ...string) []api.Site {
	sites := make([]api.Site, 0, len(urls))
	for _, u := range urls {
		sites = append(sites, api.Site{URL: u, LastStatus: "online"})
	}
	return sites
}

package dash

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sitewatch/internal/api"
	"sitewatch/internal/config"
)

// How many historical checks to fetch for the history overlay.
const historyLimit = 20

// Service is the slice of the checker API the dashboard drives. *api.Client
// implements it; tests substitute a scripted implementation.
type Service interface {
	ListSites(ctx context.Context) ([]api.Site, error)
	AddSite(ctx context.Context, url string) (string, error)
	RemoveSite(ctx context.Context, url string) error
	CheckAll(ctx context.Context) error
	StartMonitor(ctx context.Context, interval, timeout int) error
	StopMonitor(ctx context.Context) error
	MonitorStatus(ctx context.Context) (bool, error)
	SiteHistory(ctx context.Context, url string, limit int) ([]api.CheckRecord, error)
}

// Results of remote calls, delivered back into Update. Nothing sequences
// them by issue order: whichever reload resolves last overwrites the list.

type sitesMsg struct {
	sites []api.Site
	err   error
}

type siteAddedMsg struct {
	url string
	err error
}

type siteRemovedMsg struct {
	url string
	err error
}

type checkDoneMsg struct {
	err error
}

type monitorStartedMsg struct {
	interval int
	err      error
}

type monitorStoppedMsg struct {
	err error
}

type monitorStatusMsg struct {
	running bool
	err     error
}

type historyMsg struct {
	url     string
	records []api.CheckRecord
	err     error
}

func loadSitesCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		sites, err := svc.ListSites(context.Background())
		return sitesMsg{sites: sites, err: err}
	}
}

func addSiteCmd(svc Service, url string) tea.Cmd {
	return func() tea.Msg {
		confirmed, err := svc.AddSite(context.Background(), url)
		return siteAddedMsg{url: confirmed, err: err}
	}
}

func removeSiteCmd(svc Service, url string) tea.Cmd {
	return func() tea.Msg {
		return siteRemovedMsg{url: url, err: svc.RemoveSite(context.Background(), url)}
	}
}

func checkAllCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		return checkDoneMsg{err: svc.CheckAll(context.Background())}
	}
}

func startMonitorCmd(svc Service, cfg config.Monitor) tea.Cmd {
	return func() tea.Msg {
		err := svc.StartMonitor(context.Background(), cfg.Interval, cfg.Timeout)
		return monitorStartedMsg{interval: cfg.Interval, err: err}
	}
}

func stopMonitorCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		return monitorStoppedMsg{err: svc.StopMonitor(context.Background())}
	}
}

func monitorStatusCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		running, err := svc.MonitorStatus(context.Background())
		return monitorStatusMsg{running: running, err: err}
	}
}

func historyCmd(svc Service, url string, limit int) tea.Cmd {
	return func() tea.Msg {
		records, err := svc.SiteHistory(context.Background(), url, limit)
		return historyMsg{url: url, records: records, err: err}
	}
}

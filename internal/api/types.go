package api

import "net/http"

// Site is one monitored URL together with its latest known check result.
// ResponseTime is nil when no check has completed with a measurable
// duration; LastChecked is empty when the site has never been checked.
type Site struct {
	URL          string   `json:"url"`
	LastStatus   string   `json:"last_status"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	LastChecked  string   `json:"last_checked,omitempty"`
	LastError    string   `json:"last_error,omitempty"`
}

// MonitorStatus reports whether the backend's monitoring loop is running.
type MonitorStatus struct {
	Running bool `json:"running"`
}

// CheckRecord is a single historical connectivity check for a site.
type CheckRecord struct {
	CheckedAt    string   `json:"checked_at"`
	Status       string   `json:"status"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Error is a non-2xx response from the checker service. Message carries the
// server's structured error payload and may be empty.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "service returned status " + http.StatusText(e.StatusCode)
}

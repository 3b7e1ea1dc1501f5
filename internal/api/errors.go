package api

import "errors"

// ErrorMessage resolves what to show the user for a failed call: the
// server's verbatim message when the service reported one, otherwise the
// caller's per-action fallback (transport failures, empty payloads).
func ErrorMessage(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return fallback
}

package client

import (
	"fmt"
	"strings"
)

// connectionErrorMessage turns the last recorded probe failure into a
// human-readable diagnostic. Pure text generation, no side effects.
func connectionErrorMessage(last *probeFailure) string {
	if last == nil {
		return "Connection failed - All authentication methods failed"
	}

	if last.status != 0 {
		return statusMessage(last.status)
	}

	if last.errText != "" {
		return errorTextMessage(last.errText)
	}

	return "Connection failed - All authentication methods failed"
}

func statusMessage(status int) string {
	switch {
	case status == 401:
		return "Unauthorized - API token is invalid or expired"
	case status == 403:
		return "Forbidden - API token has no permission to access this resource"
	case status == 404:
		return "Not Found - resource not found or base URL incorrect"
	case status >= 500 && status <= 599:
		return fmt.Sprintf("Server Error (%d) - NocoDB instance returned an error", status)
	default:
		return fmt.Sprintf("Connection failed - HTTP %d", status)
	}
}

func errorTextMessage(errText string) string {
	switch {
	case strings.Contains(errText, "Timeout"):
		return "Connection Timeout - NocoDB instance did not respond in time"
	case strings.Contains(errText, "Network"):
		return "Network Error - could not reach the NocoDB instance"
	default:
		return "Connection Error: " + errText
	}
}

package tool

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/metrics"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// failureText maps a failure onto a short, user-facing diagnostic and a
// metrics outcome label. Nothing here ever reaches the host as a raised
// protocol fault: every failure becomes readable text.
func failureText(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return capitalize(err.Error()), "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "Nothing matches that identifier. Please verify it and try again.", "not_found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "The eShipz API rejected the configured credential. Check the ESHIPZ_TOKEN value.", "unauthorized"
	case errors.Is(err, domain.ErrNetwork):
		return "Could not reach the eShipz API: the connection failed or timed out. No retry was attempted; please try again.", "network_error"
	case errors.Is(err, domain.ErrParse):
		return "The eShipz API returned a response that could not be understood.", "parse_error"
	case errors.Is(err, domain.ErrRemote):
		return capitalize(err.Error()), "remote_error"
	default:
		return "An internal error occurred while processing the request.", "error"
	}
}

// fail records the outcome and converts the failure into an error result.
func fail(toolName string, err error) *mcp.CallToolResult {
	msg, outcome := failureText(err)
	metrics.ToolCallsTotal.WithLabelValues(toolName, outcome).Inc()
	return mcp.NewToolResultError(msg)
}

// succeed records a successful call and wraps the text result.
func succeed(toolName, text string) *mcp.CallToolResult {
	metrics.ToolCallsTotal.WithLabelValues(toolName, "ok").Inc()
	return mcp.NewToolResultText(text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

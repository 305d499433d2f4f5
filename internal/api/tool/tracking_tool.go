package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/metrics"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

const trackShipmentName = "track_shipment"

// TrackingTool exposes shipment tracking as an MCP tool.
type TrackingTool struct {
	service  ports.TrackingService
	validate *argsValidator
	logger   zerolog.Logger
}

func NewTrackingTool(service ports.TrackingService, logger zerolog.Logger) *TrackingTool {
	return &TrackingTool{service: service, validate: newArgsValidator(), logger: logger}
}

func (t *TrackingTool) Definition() mcp.Tool {
	return mcp.NewTool(trackShipmentName,
		mcp.WithDescription("Track a shipment by its tracking ID and return a human-readable status summary (delivered, out for delivery, in transit, exception, picked up, or info received)."),
		mcp.WithString("tracking_id",
			mcp.Required(),
			mcp.Description("The shipment tracking identifier to look up."),
		),
	)
}

func (t *TrackingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timer := prometheus.NewTimer(metrics.ToolCallDuration.WithLabelValues(trackShipmentName))
	defer timer.ObserveDuration()

	var args trackShipmentArgs
	if err := req.BindArguments(&args); err != nil {
		return fail(trackShipmentName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}
	if err := t.validate.Validate(args); err != nil {
		return fail(trackShipmentName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}

	report, err := t.service.Track(ctx, args.TrackingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ToolCallsTotal.WithLabelValues(trackShipmentName, "not_found").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Tracking ID %q was not found. Please verify the tracking number.", args.TrackingID)), nil
		}
		return fail(trackShipmentName, err), nil
	}

	return succeed(trackShipmentName, report.Summary), nil
}

package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/metrics"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

const carrierPerformanceName = "get_carrier_performance"

// PerformanceTool exposes route-level carrier performance comparison.
type PerformanceTool struct {
	service  ports.PerformanceService
	validate *argsValidator
	logger   zerolog.Logger
}

func NewPerformanceTool(service ports.PerformanceService, logger zerolog.Logger) *PerformanceTool {
	return &PerformanceTool{service: service, validate: newArgsValidator(), logger: logger}
}

func (t *PerformanceTool) Definition() mcp.Tool {
	return mcp.NewTool(carrierPerformanceName,
		mcp.WithDescription("Compare carrier performance scores (delivery, pickup, RTO, overall) for a source to destination pincode route and get a ranked recommendation."),
		mcp.WithString("source_pin",
			mcp.Required(),
			mcp.Description("6-digit Indian pincode of the pickup location."),
		),
		mcp.WithString("destination_pin",
			mcp.Required(),
			mcp.Description("6-digit Indian pincode of the delivery location."),
		),
	)
}

func (t *PerformanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timer := prometheus.NewTimer(metrics.ToolCallDuration.WithLabelValues(carrierPerformanceName))
	defer timer.ObserveDuration()

	var args carrierPerformanceArgs
	if err := req.BindArguments(&args); err != nil {
		return fail(carrierPerformanceName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}
	if err := t.validate.Validate(args); err != nil {
		return fail(carrierPerformanceName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}

	summary, err := t.service.Compare(ctx, args.SourcePin, args.DestinationPin)
	if err != nil {
		return fail(carrierPerformanceName, err), nil
	}

	return succeed(carrierPerformanceName, summary), nil
}

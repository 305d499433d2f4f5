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

const allocateDocketName = "allocate_docket"

// DocketTool exposes docket (AWB) allocation.
type DocketTool struct {
	service  ports.ShipmentService
	validate *argsValidator
	logger   zerolog.Logger
}

func NewDocketTool(service ports.ShipmentService, logger zerolog.Logger) *DocketTool {
	return &DocketTool{service: service, validate: newArgsValidator(), logger: logger}
}

func (t *DocketTool) Definition() mcp.Tool {
	return mcp.NewTool(allocateDocketName,
		mcp.WithDescription("Allocate a docket/AWB number for a shipment route with a specific carrier."),
		mcp.WithString("carrier_id", mcp.Required(), mcp.Description("Carrier identifier the docket is allocated with.")),
		mcp.WithString("ship_mode", mcp.Required(), mcp.Description("Ship mode, e.g. \"air\" or \"surface\".")),
		mcp.WithString("pickup_pincode", mcp.Required(), mcp.Description("6-digit pickup pincode.")),
		mcp.WithString("delivery_pincode", mcp.Required(), mcp.Description("6-digit delivery pincode.")),
		mcp.WithString("payment_mode", mcp.Required(), mcp.Description("Payment mode, e.g. \"prepaid\" or \"cod\".")),
		mcp.WithString("order_reference", mcp.Description("Optional order reference to attach.")),
		mcp.WithNumber("box_count", mcp.Description("Number of boxes, defaults to 1.")),
		mcp.WithBoolean("return_box_series", mcp.Description("Return per-box numbers, defaults to true.")),
	)
}

func (t *DocketTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timer := prometheus.NewTimer(metrics.ToolCallDuration.WithLabelValues(allocateDocketName))
	defer timer.ObserveDuration()

	var args allocateDocketArgs
	if err := req.BindArguments(&args); err != nil {
		return fail(allocateDocketName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}
	if err := t.validate.Validate(args); err != nil {
		return fail(allocateDocketName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}

	returnSeries := true
	if args.ReturnBoxSeries != nil {
		returnSeries = *args.ReturnBoxSeries
	}

	summary, err := t.service.AllocateDocket(ctx, ports.DocketInput{
		CarrierID:       args.CarrierID,
		ShipMode:        args.ShipMode,
		PickupPincode:   args.PickupPincode,
		DeliveryPincode: args.DeliveryPincode,
		PaymentMode:     args.PaymentMode,
		OrderReference:  args.OrderReference,
		BoxCount:        args.BoxCount,
		ReturnBoxSeries: returnSeries,
	})
	if err != nil {
		return fail(allocateDocketName, err), nil
	}

	return succeed(allocateDocketName, summary), nil
}

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

const fetchAndCreateName = "fetch_and_create_shipment"

// OrderTool exposes order-based shipment creation: fetch an order by ID and
// ship it in one step.
type OrderTool struct {
	service  ports.OrderService
	validate *argsValidator
	logger   zerolog.Logger
}

func NewOrderTool(service ports.OrderService, logger zerolog.Logger) *OrderTool {
	return &OrderTool{service: service, validate: newArgsValidator(), logger: logger}
}

func (t *OrderTool) Definition() mcp.Tool {
	return mcp.NewTool(fetchAndCreateName,
		mcp.WithDescription("Fetch an order by its ID from the eShipz orders API and create a shipment from it. Receiver, parcel, item, and invoice data come from the order; shipper details can be overridden."),
		mcp.WithString("order_id", mcp.Required(), mcp.Description("The order ID to fetch, e.g. \"INV/25-26/656776\".")),
		mcp.WithString("carrier_description", mcp.Description("Natural-language carrier preference. Leave empty for automatic routing.")),
		mcp.WithString("service_type", mcp.Description("Carrier service type. Inferred when empty.")),
		mcp.WithString("ship_from_name", mcp.Description("Shipper contact name, overriding the order's shipper address.")),
		mcp.WithString("ship_from_company", mcp.Description("Shipper company name override.")),
		mcp.WithString("ship_from_street1", mcp.Description("Shipper street address override.")),
		mcp.WithString("ship_from_street2", mcp.Description("Shipper street address override, second line.")),
		mcp.WithString("ship_from_city", mcp.Description("Shipper city override.")),
		mcp.WithString("ship_from_state", mcp.Description("Shipper state override.")),
		mcp.WithString("ship_from_pincode", mcp.Description("Shipper pincode override.")),
		mcp.WithString("ship_from_phone", mcp.Description("Shipper phone override.")),
		mcp.WithString("ship_from_email", mcp.Description("Shipper email override.")),
		mcp.WithString("ship_from_gstin", mcp.Description("Shipper GSTIN override.")),
		mcp.WithString("vendor_id", mcp.Description("Optional vendor ID.")),
	)
}

func (t *OrderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timer := prometheus.NewTimer(metrics.ToolCallDuration.WithLabelValues(fetchAndCreateName))
	defer timer.ObserveDuration()

	var args fetchAndCreateArgs
	if err := req.BindArguments(&args); err != nil {
		return fail(fetchAndCreateName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}
	if err := t.validate.Validate(args); err != nil {
		return fail(fetchAndCreateName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}

	summary, err := t.service.CreateFromOrder(ctx, ports.CreateFromOrderInput{
		OrderID:            args.OrderID,
		CarrierDescription: args.CarrierDescription,
		ServiceType:        args.ServiceType,
		ShipFrom: ports.PartyInput{
			Name:    args.ShipFromName,
			Company: args.ShipFromCompany,
			Street1: args.ShipFromStreet1,
			Street2: args.ShipFromStreet2,
			City:    args.ShipFromCity,
			State:   args.ShipFromState,
			Pincode: args.ShipFromPincode,
			Phone:   args.ShipFromPhone,
			Email:   args.ShipFromEmail,
			GSTIN:   args.ShipFromGSTIN,
		},
		VendorID: args.VendorID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ToolCallsTotal.WithLabelValues(fetchAndCreateName, "not_found").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("No order found with ID %q. Please verify the order ID and try again.", args.OrderID)), nil
		}
		return fail(fetchAndCreateName, err), nil
	}

	return succeed(fetchAndCreateName, summary), nil
}

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

const createShipmentName = "create_shipment"

// ShipmentTool exposes shipment creation.
type ShipmentTool struct {
	service  ports.ShipmentService
	validate *argsValidator
	logger   zerolog.Logger
}

func NewShipmentTool(service ports.ShipmentService, logger zerolog.Logger) *ShipmentTool {
	return &ShipmentTool{service: service, validate: newArgsValidator(), logger: logger}
}

func (t *ShipmentTool) Definition() mcp.Tool {
	return mcp.NewTool(createShipmentName,
		mcp.WithDescription("Create a new shipment on eShipz. Requires shipper and consignee details (name, 6-digit pincode, Indian mobile number) and the parcel weight; city/state are backfilled from pincodes when omitted."),
		mcp.WithString("carrier_description", mcp.Description("Natural-language carrier preference, e.g. \"bluedart\" or \"delhivery surface\". Leave empty for automatic routing.")),
		mcp.WithString("service_type", mcp.Description("Carrier service type. Inferred from weight and carrier when empty.")),
		mcp.WithString("customer_reference", mcp.Description("Free-form reference stored on the shipment.")),
		mcp.WithString("ship_from_name", mcp.Required(), mcp.Description("Shipper contact name.")),
		mcp.WithString("ship_from_company", mcp.Description("Shipper company name.")),
		mcp.WithString("ship_from_street1", mcp.Description("Shipper street address.")),
		mcp.WithString("ship_from_street2", mcp.Description("Shipper street address, second line.")),
		mcp.WithString("ship_from_city", mcp.Description("Shipper city.")),
		mcp.WithString("ship_from_state", mcp.Description("Shipper state. Inferred from city or pincode when empty.")),
		mcp.WithString("ship_from_pincode", mcp.Required(), mcp.Description("Shipper 6-digit Indian pincode.")),
		mcp.WithString("ship_from_phone", mcp.Required(), mcp.Description("Shipper Indian mobile number.")),
		mcp.WithString("ship_from_email", mcp.Description("Shipper email address.")),
		mcp.WithString("ship_from_gstin", mcp.Description("Shipper GSTIN for tax invoices.")),
		mcp.WithString("ship_to_name", mcp.Required(), mcp.Description("Consignee contact name.")),
		mcp.WithString("ship_to_company", mcp.Description("Consignee company name.")),
		mcp.WithString("ship_to_street1", mcp.Description("Consignee street address.")),
		mcp.WithString("ship_to_street2", mcp.Description("Consignee street address, second line.")),
		mcp.WithString("ship_to_city", mcp.Description("Consignee city.")),
		mcp.WithString("ship_to_state", mcp.Description("Consignee state. Inferred from city or pincode when empty.")),
		mcp.WithString("ship_to_pincode", mcp.Required(), mcp.Description("Consignee 6-digit Indian pincode.")),
		mcp.WithString("ship_to_phone", mcp.Required(), mcp.Description("Consignee Indian mobile number.")),
		mcp.WithString("ship_to_email", mcp.Description("Consignee email. Falls back to the shipper email.")),
		mcp.WithString("parcel_description", mcp.Description("What the parcel contains.")),
		mcp.WithNumber("parcel_weight_kg", mcp.Required(), mcp.Description("Parcel weight in kilograms (max 300).")),
		mcp.WithNumber("parcel_length_cm", mcp.Description("Parcel length in centimeters (max 300).")),
		mcp.WithNumber("parcel_width_cm", mcp.Description("Parcel width in centimeters (max 300).")),
		mcp.WithNumber("parcel_height_cm", mcp.Description("Parcel height in centimeters (max 300).")),
		mcp.WithString("item_description", mcp.Description("Description of the item inside the parcel.")),
		mcp.WithNumber("item_quantity", mcp.Description("Item quantity, defaults to 1.")),
		mcp.WithNumber("item_price", mcp.Description("Unit price of the item.")),
		mcp.WithString("item_sku", mcp.Description("Item SKU.")),
		mcp.WithString("item_hsn_code", mcp.Description("Item HSN code.")),
		mcp.WithBoolean("is_cod", mcp.Description("Collect payment on delivery.")),
		mcp.WithNumber("cod_amount", mcp.Description("COD amount in INR; required when is_cod is true.")),
		mcp.WithString("invoice_number", mcp.Description("Invoice number for GST invoicing.")),
		mcp.WithString("invoice_date", mcp.Description("Invoice date (DD-MM-YYYY, DD/MM/YYYY, YYYY/MM/DD, or DD Mon YYYY).")),
		mcp.WithBoolean("is_document", mcp.Description("The parcel is a document shipment.")),
		mcp.WithString("vendor_id", mcp.Description("Optional vendor ID.")),
	)
}

func (t *ShipmentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timer := prometheus.NewTimer(metrics.ToolCallDuration.WithLabelValues(createShipmentName))
	defer timer.ObserveDuration()

	var args createShipmentArgs
	if err := req.BindArguments(&args); err != nil {
		return fail(createShipmentName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}
	if err := t.validate.Validate(args); err != nil {
		return fail(createShipmentName, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)), nil
	}

	summary, err := t.service.Create(ctx, createInputFromArgs(args))
	if err != nil {
		return fail(createShipmentName, err), nil
	}

	return succeed(createShipmentName, summary), nil
}

func createInputFromArgs(args createShipmentArgs) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		CarrierDescription: args.CarrierDescription,
		ServiceType:        args.ServiceType,
		CustomerReference:  args.CustomerReference,
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
		ShipTo: ports.PartyInput{
			Name:    args.ShipToName,
			Company: args.ShipToCompany,
			Street1: args.ShipToStreet1,
			Street2: args.ShipToStreet2,
			City:    args.ShipToCity,
			State:   args.ShipToState,
			Pincode: args.ShipToPincode,
			Phone:   args.ShipToPhone,
			Email:   args.ShipToEmail,
		},
		Parcel: ports.ParcelInput{
			Description: args.ParcelDescription,
			WeightKg:    args.ParcelWeightKg,
			LengthCm:    args.ParcelLengthCm,
			WidthCm:     args.ParcelWidthCm,
			HeightCm:    args.ParcelHeightCm,
		},
		Item: ports.ItemInput{
			Description: args.ItemDescription,
			Quantity:    args.ItemQuantity,
			Price:       args.ItemPrice,
			SKU:         args.ItemSKU,
			HSNCode:     args.ItemHSNCode,
		},
		IsCOD:         args.IsCOD,
		CODAmount:     args.CODAmount,
		InvoiceNumber: args.InvoiceNumber,
		InvoiceDate:   args.InvoiceDate,
		IsDocument:    args.IsDocument,
		VendorID:      args.VendorID,
	}
}

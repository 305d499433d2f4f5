package ports

import (
	"context"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// TrackingReport is the rendered outcome of one tracking lookup.
type TrackingReport struct {
	Status  domain.ShipmentStatus
	Summary string
}

// TrackingService fetches, classifies, and renders a shipment's status.
type TrackingService interface {
	Track(ctx context.Context, trackingID string) (*TrackingReport, error)
}

// PerformanceService ranks carriers on a pincode route and renders the
// comparison as display text.
type PerformanceService interface {
	Compare(ctx context.Context, sourcePin, destinationPin string) (string, error)
}

// PartyInput holds caller-supplied party details before normalization.
type PartyInput struct {
	Name    string
	Company string
	Street1 string
	Street2 string
	City    string
	State   string
	Pincode string
	Phone   string
	Email   string
	GSTIN   string
}

// ParcelInput holds caller-supplied parcel details. Dimensions may be zero
// when the caller only knows the weight.
type ParcelInput struct {
	Description string
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
}

// ItemInput holds caller-supplied item details.
type ItemInput struct {
	Description string
	Quantity    int
	Price       float64
	SKU         string
	HSNCode     string
}

// CreateShipmentInput carries all data needed to create a new shipment.
type CreateShipmentInput struct {
	CarrierDescription string
	ServiceType        string
	CustomerReference  string
	ShipFrom           PartyInput
	ShipTo             PartyInput
	Parcel             ParcelInput
	Item               ItemInput
	IsCOD              bool
	CODAmount          float64
	InvoiceNumber      string
	InvoiceDate        string
	IsDocument         bool
	VendorID           string
}

// ShipmentService validates, enriches, and submits shipments.
type ShipmentService interface {
	Create(ctx context.Context, input CreateShipmentInput) (string, error)
	AllocateDocket(ctx context.Context, input DocketInput) (string, error)
}

// CreateFromOrderInput carries the parameters for order-based shipment
// creation. ShipFrom fields override whatever the order carries.
type CreateFromOrderInput struct {
	OrderID            string
	CarrierDescription string
	ServiceType        string
	ShipFrom           PartyInput
	VendorID           string
}

// OrderService fetches an order and creates a shipment from it.
type OrderService interface {
	CreateFromOrder(ctx context.Context, input CreateFromOrderInput) (string, error)
}

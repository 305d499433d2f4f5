package ports

import (
	"context"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// TrackingClient fetches the tracking history for one shipment.
// Implementations perform exactly one outbound HTTP request per call and map
// failures onto the domain sentinel errors (ErrNotFound, ErrUnauthorized,
// ErrRemote, ErrNetwork, ErrParse).
type TrackingClient interface {
	Track(ctx context.Context, trackingID string) (*domain.ShipmentSnapshot, error)
}

// CarrierScore holds one carrier's performance scores on a route. Scores are
// on a 0-5 scale; nil means the API did not report that metric.
type CarrierScore struct {
	Slug     string
	Overall  *float64
	Delivery *float64
	Pickup   *float64
	RTO      *float64
}

// RoutePerformance is the parsed carrier performance data for one
// source→destination pincode pair.
type RoutePerformance struct {
	SourcePin      string
	DestinationPin string
	Carriers       []CarrierScore
}

// PerformanceClient queries the carrier performance scoring API.
type PerformanceClient interface {
	CarrierPerformance(ctx context.Context, sourcePin, destinationPin string) (*RoutePerformance, error)
}

// Party is a fully-resolved shipping party ready for submission.
type Party struct {
	Name    string
	Company string
	Street1 string
	Street2 string
	City    string
	State   string
	Pincode string
	Phone   string
	Email   string
	TaxID   string
	Type    string // "residential" or "business"
}

// Parcel holds the physical details of the box being shipped.
type Parcel struct {
	Description string
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
}

// Item describes the contents of a parcel.
type Item struct {
	Description string
	Quantity    int
	Price       float64
	SKU         string
	HSNCode     string
}

// ShipmentOrder is the normalized, validated shipment ready to be submitted
// to the carrier API. The wire format is owned by the client implementation.
type ShipmentOrder struct {
	Slug               string
	ServiceType        string
	CustomerReference  string
	ParcelContents     string
	IsDocument         bool
	IsCOD              bool
	CODAmount          float64
	ChargeableWeightKg float64
	ShipFrom           Party
	ShipTo             Party
	Parcel             Parcel
	Item               Item
	VendorID           string
	InvoiceNumber      string
	InvoiceDate        string
	InvoiceValue       float64
}

// ShipmentCreation is the parsed result of a successful (or failed) shipment
// submission. String fields are empty when the API omitted them.
type ShipmentCreation struct {
	OrderID           string
	TrackingNumbers   []string
	Carrier           string
	Status            string
	CustomerReference string
	ChargeWeight      float64
	ChargeWeightUnit  string
	TotalCharge       float64
	TotalChargeCcy    string
	DeliveryDate      string
	TransitTime       string
	LabelURL          string
	TrackingLink      string
	CreatedAt         string
}

// DocketInput carries the parameters for a docket (AWB) allocation.
type DocketInput struct {
	CarrierID       string
	ShipMode        string
	PickupPincode   string
	DeliveryPincode string
	PaymentMode     string
	OrderReference  string
	BoxCount        int
	ReturnBoxSeries bool
}

// DocketAllocation is the parsed result of a docket allocation.
type DocketAllocation struct {
	DocketNumber    string
	Carrier         string
	PickupPincode   string
	DeliveryPincode string
	OrderReference  string
	BoxSeries       []string
	ShipMode        string
	PaymentMode     string
}

// ShipmentAPI covers shipment submission operations on the carrier API.
type ShipmentAPI interface {
	CreateShipment(ctx context.Context, order ShipmentOrder) (*ShipmentCreation, error)
	AllocateDocket(ctx context.Context, input DocketInput) (*DocketAllocation, error)
}

// OrderItem is one line item on a fetched order.
type OrderItem struct {
	Description string
	Quantity    int
	Price       float64
	SKU         string
	HSNCode     string
}

// OrderParcel is one parcel on a fetched order, normalized to kg and cm.
type OrderParcel struct {
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// OrderParty is an address block on a fetched order.
type OrderParty struct {
	Name    string
	Company string
	Street  string
	City    string
	State   string
	Pincode string
	Phone   string
	Email   string
	GSTIN   string
}

// Order is a fetched order ready to be turned into a shipment.
type Order struct {
	ID            string
	Receiver      OrderParty
	Shipper       OrderParty
	Items         []OrderItem
	Parcels       []OrderParcel
	IsCOD         bool
	CODAmount     float64
	InvoiceNumber string
	InvoiceDate   string
	InvoiceValue  float64
}

// OrderAPI fetches orders from the orders service.
type OrderAPI interface {
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
}

// PincodeInfo is the result of an Indian pincode lookup.
type PincodeInfo struct {
	Pincode  string
	City     string
	State    string
	District string
	Country  string
}

// PincodeLookup resolves city/state from a 6-digit Indian pincode.
// Lookups are best-effort: a nil result with nil error means "not found".
type PincodeLookup interface {
	Lookup(ctx context.Context, pincode string) (*PincodeInfo, error)
}

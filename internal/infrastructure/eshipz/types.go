package eshipz

import (
	"sort"
	"time"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// Wire DTOs for the eShipz APIs. All loose typing is contained here: the
// rest of the system only ever sees fully-typed domain/ports structs.

type trackingResponse struct {
	Carrier           string          `json:"carrier"`
	Events            []trackingEvent `json:"events"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	DeliveredAt       string          `json:"deliveredAt"`
	DeliveredLocation string          `json:"deliveredLocation"`
}

type trackingEvent struct {
	Timestamp     string `json:"timestamp"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	RawStatusCode string `json:"rawStatusCode"`
}

// toSnapshot converts the wire payload into an immutable domain snapshot.
// Missing optional fields become zero values, never errors, and events are
// normalized to chronological ascending order.
func (r *trackingResponse) toSnapshot(trackingID string) *domain.ShipmentSnapshot {
	snap := &domain.ShipmentSnapshot{
		TrackingID:        trackingID,
		Carrier:           r.Carrier,
		EstimatedDelivery: parseWhen(r.EstimatedDelivery),
		DeliveredAt:       parseWhen(r.DeliveredAt),
		DeliveredLocation: r.DeliveredLocation,
	}
	for _, e := range r.Events {
		snap.Events = append(snap.Events, domain.TrackingEvent{
			Timestamp:   parseWhen(e.Timestamp),
			Location:    e.Location,
			Description: e.Description,
			RawStatus:   e.RawStatusCode,
		})
	}
	sort.SliceStable(snap.Events, func(i, j int) bool {
		return snap.Events[i].Timestamp.Before(snap.Events[j].Timestamp)
	})
	return snap
}

// whenLayouts covers the timestamp shapes the aggregator emits: full RFC3339,
// zone-less datetimes, and bare dates.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseWhen(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ---------------------------------------------------------------------------
// Carrier performance
// ---------------------------------------------------------------------------

type performanceRequest struct {
	SenderPostalCode   int `json:"sender_postal_code"`
	TrackingPostalCode int `json:"tracking_postal_code"`
}

type performanceResponse struct {
	Detail performanceDetail `json:"detail"`
}

type performanceDetail struct {
	Status string      `json:"status"`
	Data   []routeData `json:"data"`
}

type routeData struct {
	SourcePin      int       `json:"sourcepin"`
	TrackingPin    int       `json:"trackingpin"`
	Slugs          []string  `json:"slug_cps_ordered"`
	DeliveryScores []float64 `json:"delivery_scores"`
	PickupScores   []float64 `json:"pickup_scores"`
	RTOScores      []float64 `json:"rto_scores"`
	OverallScores  []float64 `json:"overall_scores"`
}

// scoreAt returns a pointer to scores[i], or nil when the API reported fewer
// scores than carriers.
func scoreAt(scores []float64, i int) *float64 {
	if i >= len(scores) {
		return nil
	}
	v := scores[i]
	return &v
}

// ---------------------------------------------------------------------------
// Shipment creation
// ---------------------------------------------------------------------------

type createShipmentRequest struct {
	Billing           billingJSON  `json:"billing"`
	Slug              string       `json:"slug"`
	ServiceType       string       `json:"service_type,omitempty"`
	CustomerReference string       `json:"customer_reference"`
	Purpose           string       `json:"purpose"`
	OrderSource       string       `json:"order_source"`
	ParcelContents    string       `json:"parcel_contents"`
	IsDocument        bool         `json:"is_document"`
	IsCOD             bool         `json:"is_cod"`
	CollectOnDelivery moneyJSON    `json:"collect_on_delivery"`
	ChargedWeight     weightJSON   `json:"charged_weight"`
	Shipment          shipmentJSON `json:"shipment"`
	GSTInvoices       []gstInvoice `json:"gst_invoices"`
	VendorID          string       `json:"vendor_id,omitempty"`
	InvoiceNumber     string       `json:"invoice_number,omitempty"`
	InvoiceDate       string       `json:"invoice_date,omitempty"`
}

type billingJSON struct {
	PaidBy string `json:"paid_by"`
}

type moneyJSON struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type weightJSON struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

type dimensionJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Unit   string  `json:"unit"`
}

type partyJSON struct {
	ContactName string `json:"contact_name"`
	CompanyName string `json:"company_name"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Country     string `json:"country"`
	Type        string `json:"type"`
	TaxID       string `json:"tax_id,omitempty"`
}

type shipmentJSON struct {
	ShipFrom  partyJSON    `json:"ship_from"`
	ShipTo    partyJSON    `json:"ship_to"`
	ReturnTo  partyJSON    `json:"return_to"`
	IsReverse bool         `json:"is_reverse"`
	IsToPay   bool         `json:"is_to_pay"`
	Parcels   []parcelJSON `json:"parcels"`
}

type parcelJSON struct {
	Description string        `json:"description"`
	BoxType     string        `json:"box_type"`
	Quantity    int           `json:"quantity"`
	Weight      weightJSON    `json:"weight"`
	Dimension   dimensionJSON `json:"dimension"`
	Items       []itemJSON    `json:"items"`
}

type itemJSON struct {
	Description   string     `json:"description"`
	OriginCountry string     `json:"origin_country"`
	Quantity      int        `json:"quantity"`
	Weight        weightJSON `json:"weight"`
}

type gstInvoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	InvoiceValue  float64 `json:"invoice_value"`
	EwaybillNo    string  `json:"ewaybill_number"`
	EwaybillDate  string  `json:"ewaybill_date"`
}

type createShipmentResponse struct {
	Meta metaJSON         `json:"meta"`
	Data shipmentDataJSON `json:"data"`
}

type metaJSON struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type shipmentDataJSON struct {
	OrderID           string    `json:"order_id"`
	TrackingNumbers   []string  `json:"tracking_numbers"`
	Slug              string    `json:"slug"`
	Status            string    `json:"status"`
	CustomerReference string    `json:"customer_reference"`
	Rate              rateJSON  `json:"rate"`
	Files             filesJSON `json:"files"`
	TrackingLink      string    `json:"tracking_link"`
	CreatedAt         string    `json:"created_at"`
}

type rateJSON struct {
	ChargeWeight weightJSON `json:"charge_weight"`
	TotalCharge  struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"total_charge"`
	DeliveryDate string `json:"delivery_date"`
	TransitTime  string `json:"transit_time"`
}

type filesJSON struct {
	Label struct {
		LabelMeta struct {
			URL string `json:"url"`
		} `json:"label_meta"`
	} `json:"label"`
}

// ---------------------------------------------------------------------------
// Docket allocation
// ---------------------------------------------------------------------------

type docketRequest struct {
	CarrierID          string `json:"carrier_id"`
	ShipMode           string `json:"ship_mode"`
	PickupPincode      string `json:"pickup_pincode"`
	DeliveryPincode    string `json:"delivery_pincode"`
	PaymentMode        string `json:"payment_mode"`
	OrderReference     string `json:"order_reference,omitempty"`
	BoxCount           int    `json:"box_count"`
	ReturnBoxSeries    bool   `json:"return_box_series"`
	PackageNumberFetch bool   `json:"package_number_fetch"`
	GenerateSticker    bool   `json:"generate_sticker"`
}

type docketResponse struct {
	Status          string   `json:"status"`
	Error           string   `json:"error"`
	Message         string   `json:"message"`
	DocketNumber    string   `json:"docket_number"`
	AWBNumber       string   `json:"awb_number"`
	CarrierID       string   `json:"carrier_id"`
	Carrier         string   `json:"carrier"`
	PickupPincode   string   `json:"pickup_pincode"`
	DeliveryPincode string   `json:"delivery_pincode"`
	OrderReference  string   `json:"order_reference"`
	BoxSeries       []string `json:"box_series"`
	PackageNumbers  []string `json:"package_numbers"`
	ShipMode        string   `json:"ship_mode"`
	PaymentMode     string   `json:"payment_mode"`
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

type orderResponse struct {
	Status int         `json:"status"`
	Remark string      `json:"remark"`
	Orders []orderJSON `json:"orders"`
}

type orderJSON struct {
	ReceiverAddress orderAddressJSON  `json:"receiver_address"`
	ShipperAddress  orderAddressJSON  `json:"shipper_address"`
	Items           []orderItemJSON   `json:"items"`
	Parcels         []orderParcelJSON `json:"parcels"`
	IsCOD           bool              `json:"is_cod"`
	CODAmount       float64           `json:"cod_amount"`
	InvoiceNumber   string            `json:"invoice_number"`
	GSTInvoices     []gstInvoice      `json:"gst_invoices"`
}

type orderAddressJSON struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	GSTNumber   string `json:"gst_number"`
}

type orderItemJSON struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Value       struct {
		Amount float64 `json:"amount"`
	} `json:"value"`
	SKU    string `json:"sku"`
	HSCode string `json:"hs_code"`
}

type orderParcelJSON struct {
	Weight struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit_of_measurement"`
	} `json:"weight"`
	Dimensions struct {
		Length float64 `json:"length"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Unit   string  `json:"unit_of_measurement"`
	} `json:"dimensions"`
}

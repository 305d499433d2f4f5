// Package eshipz implements the HTTP clients for the eShipz APIs: shipment
// tracking, carrier performance scoring, shipment creation, docket
// allocation, and order retrieval.
//
// All failures are mapped onto the domain sentinel errors at this boundary;
// callers never see raw HTTP or JSON errors.
package eshipz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/metrics"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

const (
	apiTokenHeader = "X-API-TOKEN"
	defaultTimeout = 30 * time.Second

	trackingPath       = "/api/v2/trackings"
	createShipmentPath = "/api/v1/create-shipments"
	docketPath         = "/api/v1/docket-allocation"
)

// Config carries the endpoints and credential for the eShipz APIs.
type Config struct {
	BaseURL        string
	Token          string
	PerformanceURL string
	OrdersURL      string
	Timeout        time.Duration
}

// Client is a thin, stateless HTTP client. One method call is exactly one
// outbound request: no retries, no caching, no connection management beyond
// net/http defaults.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Track fetches the tracking history for one shipment.
func (c *Client) Track(ctx context.Context, trackingID string) (*domain.ShipmentSnapshot, error) {
	endpoint := c.cfg.BaseURL + trackingPath + "?track_id=" + url.QueryEscape(trackingID)

	var resp trackingResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, "tracking", nil, &resp); err != nil {
		return nil, err
	}

	snap := resp.toSnapshot(trackingID)
	c.logger.Debug().
		Str("tracking_id", trackingID).
		Str("carrier", snap.Carrier).
		Int("events", len(snap.Events)).
		Msg("tracking response parsed")
	return snap, nil
}

// CarrierPerformance queries performance scores for a pincode route.
func (c *Client) CarrierPerformance(ctx context.Context, sourcePin, destinationPin string) (*ports.RoutePerformance, error) {
	src, err := strconv.Atoi(sourcePin)
	if err != nil {
		return nil, fmt.Errorf("%w: source pincode %q is not numeric", domain.ErrInvalidInput, sourcePin)
	}
	dst, err := strconv.Atoi(destinationPin)
	if err != nil {
		return nil, fmt.Errorf("%w: destination pincode %q is not numeric", domain.ErrInvalidInput, destinationPin)
	}

	var resp performanceResponse
	err = c.doJSON(ctx, http.MethodPost, c.cfg.PerformanceURL, "performance",
		performanceRequest{SenderPostalCode: src, TrackingPostalCode: dst}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Detail.Status != "SUCCESS" {
		metrics.UpstreamErrorsTotal.WithLabelValues("performance", "remote").Inc()
		return nil, fmt.Errorf("%w: performance API returned status %q", domain.ErrRemote, resp.Detail.Status)
	}

	route := &ports.RoutePerformance{SourcePin: sourcePin, DestinationPin: destinationPin}
	if len(resp.Detail.Data) == 0 {
		return route, nil
	}

	data := resp.Detail.Data[0]
	for i, slug := range data.Slugs {
		route.Carriers = append(route.Carriers, ports.CarrierScore{
			Slug:     slug,
			Overall:  scoreAt(data.OverallScores, i),
			Delivery: scoreAt(data.DeliveryScores, i),
			Pickup:   scoreAt(data.PickupScores, i),
			RTO:      scoreAt(data.RTOScores, i),
		})
	}
	return route, nil
}

// CreateShipment submits a normalized shipment order.
func (c *Client) CreateShipment(ctx context.Context, order ports.ShipmentOrder) (*ports.ShipmentCreation, error) {
	var resp createShipmentResponse
	err := c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+createShipmentPath, "create_shipment",
		buildCreateRequest(order), &resp)
	if err != nil {
		return nil, err
	}

	if resp.Meta.Code != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("create_shipment", "remote").Inc()
		msg := resp.Meta.Message
		if msg == "" {
			msg = "unknown error"
		}
		if len(resp.Meta.Details) > 0 {
			msg += ": " + strings.Join(resp.Meta.Details, ", ")
		}
		return nil, fmt.Errorf("%w: shipment creation failed: %s", domain.ErrRemote, msg)
	}

	d := resp.Data
	return &ports.ShipmentCreation{
		OrderID:           d.OrderID,
		TrackingNumbers:   d.TrackingNumbers,
		Carrier:           d.Slug,
		Status:            d.Status,
		CustomerReference: d.CustomerReference,
		ChargeWeight:      d.Rate.ChargeWeight.Value,
		ChargeWeightUnit:  d.Rate.ChargeWeight.Unit,
		TotalCharge:       d.Rate.TotalCharge.Amount,
		TotalChargeCcy:    d.Rate.TotalCharge.Currency,
		DeliveryDate:      d.Rate.DeliveryDate,
		TransitTime:       d.Rate.TransitTime,
		LabelURL:          d.Files.Label.LabelMeta.URL,
		TrackingLink:      d.TrackingLink,
		CreatedAt:         d.CreatedAt,
	}, nil
}

// AllocateDocket requests a docket/AWB allocation.
func (c *Client) AllocateDocket(ctx context.Context, input ports.DocketInput) (*ports.DocketAllocation, error) {
	var resp docketResponse
	err := c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+docketPath, "docket", docketRequest{
		CarrierID:       input.CarrierID,
		ShipMode:        input.ShipMode,
		PickupPincode:   input.PickupPincode,
		DeliveryPincode: input.DeliveryPincode,
		PaymentMode:     input.PaymentMode,
		OrderReference:  input.OrderReference,
		BoxCount:        input.BoxCount,
		ReturnBoxSeries: input.ReturnBoxSeries,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status == "error" || resp.Error != "" {
		metrics.UpstreamErrorsTotal.WithLabelValues("docket", "remote").Inc()
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: docket allocation failed: %s", domain.ErrRemote, msg)
	}

	docket := resp.DocketNumber
	if docket == "" {
		docket = resp.AWBNumber
	}
	carrier := resp.CarrierID
	if carrier == "" {
		carrier = resp.Carrier
	}
	boxes := resp.BoxSeries
	if len(boxes) == 0 {
		boxes = resp.PackageNumbers
	}
	return &ports.DocketAllocation{
		DocketNumber:    docket,
		Carrier:         carrier,
		PickupPincode:   resp.PickupPincode,
		DeliveryPincode: resp.DeliveryPincode,
		OrderReference:  resp.OrderReference,
		BoxSeries:       boxes,
		ShipMode:        resp.ShipMode,
		PaymentMode:     resp.PaymentMode,
	}, nil
}

// FetchOrder retrieves a single order by ID from the orders API.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*ports.Order, error) {
	endpoint := strings.TrimSuffix(c.cfg.OrdersURL, "/") + "/" + url.PathEscape(orderID)

	var resp orderResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, "orders", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("orders", "remote").Inc()
		remark := resp.Remark
		if remark == "" {
			remark = "unknown error"
		}
		return nil, fmt.Errorf("%w: order fetch failed: %s", domain.ErrRemote, remark)
	}
	if len(resp.Orders) == 0 {
		return nil, fmt.Errorf("%w: no order with ID %q", domain.ErrNotFound, orderID)
	}

	return mapOrder(orderID, resp.Orders[0]), nil
}

// doJSON performs one request with the API token attached, maps transport and
// status failures onto sentinel errors, and decodes the body into out.
func (c *Client) doJSON(ctx context.Context, method, endpoint, name string, payload, out any) error {
	var body *bytes.Buffer
	if payload != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			return fmt.Errorf("encode %s request: %w", name, err)
		}
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiTokenHeader, c.cfg.Token)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(name, "network").Inc()
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamErrorsTotal.WithLabelValues(name, "not_found").Inc()
		return fmt.Errorf("%w: HTTP 404", domain.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		metrics.UpstreamErrorsTotal.WithLabelValues(name, "unauthorized").Inc()
		return fmt.Errorf("%w: HTTP %d", domain.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.UpstreamErrorsTotal.WithLabelValues(name, "remote").Inc()
		return fmt.Errorf("%w: HTTP %d", domain.ErrRemote, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(name, "parse").Inc()
		return fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return nil
}

func buildCreateRequest(order ports.ShipmentOrder) createShipmentRequest {
	shipFrom := partyToJSON(order.ShipFrom)
	req := createShipmentRequest{
		Billing:           billingJSON{PaidBy: "shipper"},
		Slug:              order.Slug,
		ServiceType:       order.ServiceType,
		CustomerReference: order.CustomerReference,
		Purpose:           "commercial",
		OrderSource:       "mcp_api",
		ParcelContents:    order.ParcelContents,
		IsDocument:        order.IsDocument,
		IsCOD:             order.IsCOD,
		CollectOnDelivery: moneyJSON{Amount: order.CODAmount, Currency: "INR"},
		ChargedWeight:     weightJSON{Unit: "kg", Value: order.ChargeableWeightKg},
		Shipment: shipmentJSON{
			ShipFrom: shipFrom,
			ShipTo:   partyToJSON(order.ShipTo),
			ReturnTo: shipFrom,
			Parcels: []parcelJSON{{
				Description: order.Parcel.Description,
				BoxType:     "custom",
				Quantity:    1,
				Weight:      weightJSON{Unit: "kg", Value: order.Parcel.WeightKg},
				Dimension: dimensionJSON{
					Width:  order.Parcel.WidthCm,
					Height: order.Parcel.HeightCm,
					Length: order.Parcel.LengthCm,
					Unit:   "cm",
				},
				Items: []itemJSON{{
					Description:   order.Item.Description,
					OriginCountry: "IN",
					Quantity:      order.Item.Quantity,
					Weight:        weightJSON{Unit: "kg", Value: order.Parcel.WeightKg},
				}},
			}},
		},
		GSTInvoices:   []gstInvoice{},
		VendorID:      order.VendorID,
		InvoiceNumber: order.InvoiceNumber,
		InvoiceDate:   order.InvoiceDate,
	}
	if order.InvoiceNumber != "" && order.InvoiceDate != "" {
		req.GSTInvoices = []gstInvoice{{
			InvoiceNumber: order.InvoiceNumber,
			InvoiceDate:   order.InvoiceDate,
			InvoiceValue:  order.InvoiceValue,
		}}
	}
	return req
}

func partyToJSON(p ports.Party) partyJSON {
	return partyJSON{
		ContactName: p.Name,
		CompanyName: p.Company,
		Street1:     p.Street1,
		Street2:     p.Street2,
		City:        p.City,
		State:       p.State,
		PostalCode:  p.Pincode,
		Phone:       p.Phone,
		Email:       p.Email,
		Country:     "IN",
		Type:        p.Type,
		TaxID:       p.TaxID,
	}
}

func mapOrder(orderID string, o orderJSON) *ports.Order {
	order := &ports.Order{
		ID:            orderID,
		Receiver:      mapOrderParty(o.ReceiverAddress),
		Shipper:       mapOrderParty(o.ShipperAddress),
		IsCOD:         o.IsCOD,
		CODAmount:     o.CODAmount,
		InvoiceNumber: o.InvoiceNumber,
	}
	if len(o.GSTInvoices) > 0 {
		inv := o.GSTInvoices[0]
		if order.InvoiceNumber == "" {
			order.InvoiceNumber = inv.InvoiceNumber
		}
		order.InvoiceDate = inv.InvoiceDate
		order.InvoiceValue = inv.InvoiceValue
	}
	for _, it := range o.Items {
		order.Items = append(order.Items, ports.OrderItem{
			Description: it.Description,
			Quantity:    max(it.Quantity, 1),
			Price:       it.Value.Amount,
			SKU:         it.SKU,
			HSNCode:     it.HSCode,
		})
	}
	for _, p := range o.Parcels {
		order.Parcels = append(order.Parcels, mapOrderParcel(p))
	}
	return order
}

func mapOrderParty(a orderAddressJSON) ports.OrderParty {
	return ports.OrderParty{
		Name:    strings.TrimSpace(a.FirstName + " " + a.LastName),
		Company: a.CompanyName,
		Street:  a.Address,
		City:    a.City,
		State:   a.State,
		Pincode: a.Zipcode,
		Phone:   a.Phone,
		Email:   a.Email,
		GSTIN:   a.GSTNumber,
	}
}

// mapOrderParcel normalizes parcel units to kg and cm.
func mapOrderParcel(p orderParcelJSON) ports.OrderParcel {
	weight := p.Weight.Value
	switch strings.ToUpper(p.Weight.Unit) {
	case "G", "GRAM":
		weight /= 1000
	}
	length, width, height := p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height
	switch strings.ToUpper(p.Dimensions.Unit) {
	case "M", "METER":
		length *= 100
		width *= 100
		height *= 100
	}
	return ports.OrderParcel{WeightKg: weight, LengthCm: length, WidthCm: width, HeightCm: height}
}

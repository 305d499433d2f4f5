package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubShipmentAPI struct {
	creation   *ports.ShipmentCreation
	allocation *ports.DocketAllocation
	err        error
	lastOrder  ports.ShipmentOrder
	lastDocket ports.DocketInput
	calls      int
}

func (a *stubShipmentAPI) CreateShipment(_ context.Context, order ports.ShipmentOrder) (*ports.ShipmentCreation, error) {
	a.lastOrder = order
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	if a.creation != nil {
		return a.creation, nil
	}
	return &ports.ShipmentCreation{OrderID: "ORD001", TrackingNumbers: []string{"AWB001"}}, nil
}

func (a *stubShipmentAPI) AllocateDocket(_ context.Context, input ports.DocketInput) (*ports.DocketAllocation, error) {
	a.lastDocket = input
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	if a.allocation != nil {
		return a.allocation, nil
	}
	return &ports.DocketAllocation{DocketNumber: "DKT001"}, nil
}

type stubPincodeLookup struct {
	byPin map[string]*ports.PincodeInfo
	err   error
}

func (l *stubPincodeLookup) Lookup(_ context.Context, pin string) (*ports.PincodeInfo, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.byPin[pin], nil
}

func validInput() ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		ShipFrom: ports.PartyInput{
			Name:    "Ravi Kumar",
			City:    "Mumbai",
			Pincode: "400001",
			Phone:   "9876543210",
			Email:   "ravi@example.com",
		},
		ShipTo: ports.PartyInput{
			Name:    "Priya Singh",
			City:    "Bengaluru",
			Pincode: "560001",
			Phone:   "+91 9123456780",
		},
		Parcel: ports.ParcelInput{Description: "Books", WeightKg: 2},
	}
}

func newTestShipmentService(api *stubShipmentAPI) *ShipmentService {
	return NewShipmentService(api, &stubPincodeLookup{}, discardLogger)
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestShipmentService_Create_MissingFieldsListed(t *testing.T) {
	api := &stubShipmentAPI{}
	svc := newTestShipmentService(api)

	_, err := svc.Create(context.Background(), ports.CreateShipmentInput{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, field := range []string{"ship_from_name", "ship_to_phone", "parcel_weight_kg"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should name %q, got: %v", field, err)
		}
	}
	if api.calls != 0 {
		t.Error("invalid input must not reach the API")
	}
}

func TestShipmentService_Create_InvalidPhone(t *testing.T) {
	svc := newTestShipmentService(&stubShipmentAPI{})

	in := validInput()
	in.ShipFrom.Phone = "12345"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "shipper phone") {
		t.Errorf("expected shipper phone error, got %v", err)
	}

	in = validInput()
	in.ShipTo.Phone = "12345"
	_, err = svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "consignee phone") {
		t.Errorf("expected consignee phone error, got %v", err)
	}
}

func TestShipmentService_Create_InvalidPincode(t *testing.T) {
	svc := newTestShipmentService(&stubShipmentAPI{})

	in := validInput()
	in.ShipTo.Pincode = "012345"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "consignee pincode") {
		t.Errorf("expected consignee pincode error, got %v", err)
	}
}

func TestShipmentService_Create_ParcelLimits(t *testing.T) {
	svc := newTestShipmentService(&stubShipmentAPI{})

	in := validInput()
	in.Parcel.WeightKg = 301
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("overweight: expected ErrInvalidInput, got %v", err)
	}

	in = validInput()
	in.Parcel.LengthCm = 400
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("oversize: expected ErrInvalidInput, got %v", err)
	}
}

func TestShipmentService_Create_CODRules(t *testing.T) {
	api := &stubShipmentAPI{}
	svc := newTestShipmentService(api)

	// COD without an amount is an error.
	in := validInput()
	in.IsCOD = true
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("COD without amount: expected ErrInvalidInput, got %v", err)
	}

	// An amount without COD is silently zeroed, not an error.
	in = validInput()
	in.CODAmount = 500
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastOrder.CODAmount != 0 {
		t.Errorf("expected COD amount zeroed, got %g", api.lastOrder.CODAmount)
	}
}

func TestShipmentService_Create_InvalidInvoiceDate(t *testing.T) {
	svc := newTestShipmentService(&stubShipmentAPI{})

	in := validInput()
	in.InvoiceDate = "32-13-2026"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "invoice date") {
		t.Errorf("expected invoice date error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Enrichment
// ---------------------------------------------------------------------------

func TestShipmentService_Create_NormalizesAndEnriches(t *testing.T) {
	api := &stubShipmentAPI{}
	svc := newTestShipmentService(api)

	in := validInput()
	in.CarrierDescription = "Blue Dart"
	in.Parcel.LengthCm, in.Parcel.WidthCm, in.Parcel.HeightCm = 50, 40, 30
	in.InvoiceNumber = "INV-42"
	in.InvoiceDate = "15-01-2026"
	in.Item = ports.ItemInput{Description: "Book", Quantity: 2, Price: 250}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := api.lastOrder
	if order.Slug != "bluedart" {
		t.Errorf("slug: expected bluedart, got %q", order.Slug)
	}
	if order.ShipTo.Phone != "9123456780" {
		t.Errorf("phone not normalized: %q", order.ShipTo.Phone)
	}
	// Volumetric 50*40*30/5000 = 12kg beats actual 2kg.
	if order.ChargeableWeightKg != 12 {
		t.Errorf("chargeable weight: expected 12, got %g", order.ChargeableWeightKg)
	}
	if order.ServiceType != "express" {
		t.Errorf("service type: expected express, got %q", order.ServiceType)
	}
	if order.InvoiceDate != "2026-01-15" {
		t.Errorf("invoice date: expected 2026-01-15, got %q", order.InvoiceDate)
	}
	if order.InvoiceValue != 500 {
		t.Errorf("invoice value: expected 500, got %g", order.InvoiceValue)
	}
	// States inferred from well-known cities.
	if order.ShipFrom.State != "maharashtra" || order.ShipTo.State != "karnataka" {
		t.Errorf("states not inferred: %q / %q", order.ShipFrom.State, order.ShipTo.State)
	}
	// Consignee email falls back to the shipper's.
	if order.ShipTo.Email != "ravi@example.com" {
		t.Errorf("email fallback: got %q", order.ShipTo.Email)
	}
}

func TestShipmentService_Create_BackfillsCityFromPincode(t *testing.T) {
	api := &stubShipmentAPI{}
	pins := &stubPincodeLookup{byPin: map[string]*ports.PincodeInfo{
		"400001": {Pincode: "400001", City: "Mumbai", State: "Maharashtra"},
	}}
	svc := NewShipmentService(api, pins, discardLogger)

	in := validInput()
	in.ShipFrom.City = ""
	in.ShipFrom.State = ""

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastOrder.ShipFrom.City != "Mumbai" || api.lastOrder.ShipFrom.State != "Maharashtra" {
		t.Errorf("backfill failed: %q / %q", api.lastOrder.ShipFrom.City, api.lastOrder.ShipFrom.State)
	}
}

func TestShipmentService_Create_PincodeLookupFailureIsNotFatal(t *testing.T) {
	api := &stubShipmentAPI{}
	pins := &stubPincodeLookup{err: domain.ErrNetwork}
	svc := NewShipmentService(api, pins, discardLogger)

	// Cities and inferable states are present, so the lookup failure is moot.
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("lookup failure must not block creation: %v", err)
	}
}

func TestShipmentService_Create_UnknownCityNeedsState(t *testing.T) {
	svc := newTestShipmentService(&stubShipmentAPI{})

	in := validInput()
	in.ShipTo.City = "Smallville"

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "consignee (city: Smallville)") {
		t.Errorf("error should identify the party and city, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Rendering and API failures
// ---------------------------------------------------------------------------

func TestShipmentService_Create_RendersResult(t *testing.T) {
	api := &stubShipmentAPI{creation: &ports.ShipmentCreation{
		OrderID:         "ORD001",
		TrackingNumbers: []string{"AWB001", "AWB002"},
		Carrier:         "bluedart",
		Status:          "created",
		ChargeWeight:    12,
		LabelURL:        "https://labels.example.com/AWB001.pdf",
	}}
	svc := newTestShipmentService(api)

	out, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"SHIPMENT CREATED SUCCESSFULLY",
		"Order ID: ORD001",
		"Tracking Numbers (2 boxes):",
		"Box 1: AWB001",
		"Carrier: BLUEDART",
		"Status: CREATED",
		"Chargeable Weight: 12 kg",
		"Shipping Label: https://labels.example.com/AWB001.pdf",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShipmentService_Create_PropagatesAPIError(t *testing.T) {
	api := &stubShipmentAPI{err: domain.ErrRemote}
	svc := newTestShipmentService(api)

	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, domain.ErrRemote) {
		t.Errorf("expected ErrRemote, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Docket allocation
// ---------------------------------------------------------------------------

func validDocketInput() ports.DocketInput {
	return ports.DocketInput{
		CarrierID:       "bluedart-1",
		ShipMode:        "surface",
		PickupPincode:   "400001",
		DeliveryPincode: "560001",
		PaymentMode:     "prepaid",
		BoxCount:        2,
		ReturnBoxSeries: true,
	}
}

func TestShipmentService_AllocateDocket_Success(t *testing.T) {
	api := &stubShipmentAPI{allocation: &ports.DocketAllocation{
		DocketNumber: "DKT001",
		Carrier:      "bluedart",
		BoxSeries:    []string{"BOX1", "BOX2"},
		ShipMode:     "surface",
		PaymentMode:  "prepaid",
	}}
	svc := newTestShipmentService(api)

	out, err := svc.AllocateDocket(context.Background(), validDocketInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"DOCKET ALLOCATED SUCCESSFULLY",
		"Docket/AWB Number: DKT001",
		"Box Series (2 boxes):",
		"Ship Mode: SURFACE",
		"Payment Mode: PREPAID",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShipmentService_AllocateDocket_Validation(t *testing.T) {
	api := &stubShipmentAPI{}
	svc := newTestShipmentService(api)

	in := validDocketInput()
	in.CarrierID = ""
	if _, err := svc.AllocateDocket(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing carrier: expected ErrInvalidInput, got %v", err)
	}

	in = validDocketInput()
	in.PickupPincode = "12"
	if _, err := svc.AllocateDocket(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad pincode: expected ErrInvalidInput, got %v", err)
	}
	if api.calls != 0 {
		t.Error("invalid input must not reach the API")
	}
}

func TestShipmentService_AllocateDocket_DefaultsBoxCount(t *testing.T) {
	api := &stubShipmentAPI{}
	svc := newTestShipmentService(api)

	in := validDocketInput()
	in.BoxCount = 0
	if _, err := svc.AllocateDocket(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastDocket.BoxCount != 1 {
		t.Errorf("expected box count defaulted to 1, got %d", api.lastDocket.BoxCount)
	}
}

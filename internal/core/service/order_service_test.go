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

type stubOrderAPI struct {
	order *ports.Order
	err   error
}

func (a *stubOrderAPI) FetchOrder(_ context.Context, orderID string) (*ports.Order, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.order, nil
}

type stubShipmentService struct {
	lastInput ports.CreateShipmentInput
	out       string
	err       error
	calls     int
}

func (s *stubShipmentService) Create(_ context.Context, input ports.CreateShipmentInput) (string, error) {
	s.lastInput = input
	s.calls++
	return s.out, s.err
}

func (s *stubShipmentService) AllocateDocket(_ context.Context, _ ports.DocketInput) (string, error) {
	return "", nil
}

func sampleOrder() *ports.Order {
	return &ports.Order{
		ID: "INV/25-26/656776",
		Receiver: ports.OrderParty{
			Name:    "Priya Singh",
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
			Phone:   "9123456780",
			Email:   "priya@example.com",
		},
		Shipper: ports.OrderParty{
			Name:    "Acme Traders",
			City:    "Mumbai",
			Pincode: "400001",
			Phone:   "9876543210",
		},
		Items: []ports.OrderItem{
			{Description: "Widget", Quantity: 3, Price: 199, SKU: "WID-3", HSNCode: "8471"},
		},
		Parcels: []ports.OrderParcel{
			{WeightKg: 1.5, LengthCm: 30, WidthCm: 20, HeightCm: 10},
		},
		IsCOD:         true,
		CODAmount:     597,
		InvoiceNumber: "INV-656776",
		InvoiceDate:   "2026-01-15",
	}
}

// ---------------------------------------------------------------------------
// CreateFromOrder tests
// ---------------------------------------------------------------------------

func TestOrderService_CreateFromOrder_MapsOrderData(t *testing.T) {
	shipments := &stubShipmentService{out: "created"}
	svc := NewOrderService(&stubOrderAPI{order: sampleOrder()}, shipments, discardLogger)

	out, err := svc.CreateFromOrder(context.Background(), ports.CreateFromOrderInput{
		OrderID: "INV/25-26/656776",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "created" {
		t.Errorf("expected delegated output, got %q", out)
	}

	in := shipments.lastInput
	if in.CustomerReference != "INV/25-26/656776" {
		t.Errorf("order ID must become the customer reference, got %q", in.CustomerReference)
	}
	if in.ShipTo.Name != "Priya Singh" || in.ShipTo.Pincode != "560001" {
		t.Errorf("receiver not mapped: %+v", in.ShipTo)
	}
	if in.ShipFrom.Name != "Acme Traders" {
		t.Errorf("shipper fallback not applied: %+v", in.ShipFrom)
	}
	if in.Item.Quantity != 3 || in.Item.Price != 199 {
		t.Errorf("first item not mapped: %+v", in.Item)
	}
	if in.Parcel.WeightKg != 1.5 || in.Parcel.LengthCm != 30 {
		t.Errorf("first parcel not mapped: %+v", in.Parcel)
	}
	if !in.IsCOD || in.CODAmount != 597 {
		t.Errorf("COD not carried over: %v %g", in.IsCOD, in.CODAmount)
	}
	if in.InvoiceNumber != "INV-656776" || in.InvoiceDate != "2026-01-15" {
		t.Errorf("invoice not carried over: %q %q", in.InvoiceNumber, in.InvoiceDate)
	}
}

func TestOrderService_CreateFromOrder_OverridesWinOverOrder(t *testing.T) {
	shipments := &stubShipmentService{}
	svc := NewOrderService(&stubOrderAPI{order: sampleOrder()}, shipments, discardLogger)

	_, err := svc.CreateFromOrder(context.Background(), ports.CreateFromOrderInput{
		OrderID: "INV/25-26/656776",
		ShipFrom: ports.PartyInput{
			Name:  "Warehouse B",
			Phone: "9000000000",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	from := shipments.lastInput.ShipFrom
	if from.Name != "Warehouse B" || from.Phone != "9000000000" {
		t.Errorf("overrides not applied: %+v", from)
	}
	// Fields without an override keep the order's values.
	if from.Pincode != "400001" || from.City != "Mumbai" {
		t.Errorf("fallbacks lost: %+v", from)
	}
}

func TestOrderService_CreateFromOrder_MissingOrderFields(t *testing.T) {
	order := sampleOrder()
	order.Shipper = ports.OrderParty{}
	order.Parcels = nil
	shipments := &stubShipmentService{}
	svc := NewOrderService(&stubOrderAPI{order: order}, shipments, discardLogger)

	_, err := svc.CreateFromOrder(context.Background(), ports.CreateFromOrderInput{
		OrderID: "INV/25-26/656776",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, want := range []string{"shipper name (ship_from_name parameter)", "parcel weight"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
	if shipments.calls != 0 {
		t.Error("incomplete orders must not reach shipment creation")
	}
}

func TestOrderService_CreateFromOrder_EmptyOrderID(t *testing.T) {
	svc := NewOrderService(&stubOrderAPI{}, &stubShipmentService{}, discardLogger)

	_, err := svc.CreateFromOrder(context.Background(), ports.CreateFromOrderInput{OrderID: "  "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderService_CreateFromOrder_OrderNotFound(t *testing.T) {
	svc := NewOrderService(&stubOrderAPI{err: domain.ErrNotFound}, &stubShipmentService{}, discardLogger)

	_, err := svc.CreateFromOrder(context.Background(), ports.CreateFromOrderInput{OrderID: "GHOST"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

package domain

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func snapshotWithEvents(events ...TrackingEvent) *ShipmentSnapshot {
	return &ShipmentSnapshot{
		TrackingID: "TEST123",
		Carrier:    "bluedart",
		Events:     events,
	}
}

func event(rawStatus, description string) TrackingEvent {
	return TrackingEvent{
		Timestamp:   time.Date(2026, 1, 30, 14, 23, 0, 0, time.UTC),
		Description: description,
		RawStatus:   rawStatus,
	}
}

// ---------------------------------------------------------------------------
// Precedence tests
// ---------------------------------------------------------------------------

func TestClassify_DeliveredAtWinsUnconditionally(t *testing.T) {
	// DeliveredAt is set while the latest event still looks like an exception.
	snap := snapshotWithEvents(event("exception", "Delivery attempt failed"))
	snap.DeliveredAt = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	if got := Classify(snap); got != StatusDelivered {
		t.Errorf("expected %q, got %q", StatusDelivered, got)
	}
}

func TestClassify_DeliveredEvent(t *testing.T) {
	for _, code := range []string{"delivered", "DL", "dlvd", "OK"} {
		snap := snapshotWithEvents(event(code, "Shipment handed over"))
		if got := Classify(snap); got != StatusDelivered {
			t.Errorf("code %q: expected %q, got %q", code, StatusDelivered, got)
		}
	}
}

func TestClassify_DeliveredDescriptionOnly(t *testing.T) {
	// Some carriers report delivery only in free text, with no usable code.
	cases := []TrackingEvent{
		event("", "Shipment delivered to recipient"),
		event("xx", "Delivered at front door"),
	}
	for _, e := range cases {
		snap := snapshotWithEvents(e)
		if got := Classify(snap); got != StatusDelivered {
			t.Errorf("event %+v: expected %q, got %q", e, StatusDelivered, got)
		}
	}
}

func TestClassify_DeliveryNegationsStayExceptions(t *testing.T) {
	cases := []TrackingEvent{
		event("", "Shipment undelivered, address incomplete"),
		event("", "Not delivered: consignee unavailable"),
		event("", "Package could not be delivered today"),
	}
	for _, e := range cases {
		snap := snapshotWithEvents(e)
		if got := Classify(snap); got != StatusException {
			t.Errorf("event %+v: expected %q, got %q", e, StatusException, got)
		}
	}
}

func TestClassify_OutForDelivery(t *testing.T) {
	cases := []TrackingEvent{
		event("ofd", "With courier"),
		event("OUT_FOR_DELIVERY", "With courier"),
		event("", "Shipment is out for delivery"),
	}
	for _, e := range cases {
		snap := snapshotWithEvents(e)
		if got := Classify(snap); got != StatusOutForDelivery {
			t.Errorf("event %+v: expected %q, got %q", e, StatusOutForDelivery, got)
		}
	}
}

func TestClassify_Exception(t *testing.T) {
	cases := []TrackingEvent{
		event("exception", "Address issue"),
		event("NDR", "Non-delivery report raised"),
		event("rto", "Return initiated"),
		event("", "Unable to deliver: consignee unavailable"),
	}
	for _, e := range cases {
		snap := snapshotWithEvents(e)
		if got := Classify(snap); got != StatusException {
			t.Errorf("event %+v: expected %q, got %q", e, StatusException, got)
		}
	}
}

func TestClassify_PickedUp(t *testing.T) {
	cases := []TrackingEvent{
		event("PU", "Collected from shipper"),
		event("picked_up", "Collected from shipper"),
		event("", "Shipment picked up from origin"),
	}
	for _, e := range cases {
		snap := snapshotWithEvents(e)
		if got := Classify(snap); got != StatusPickedUp {
			t.Errorf("event %+v: expected %q, got %q", e, StatusPickedUp, got)
		}
	}
}

func TestClassify_InTransitFallback(t *testing.T) {
	// An unrecognised latest event with a non-empty history is in transit.
	snap := snapshotWithEvents(event("IT", "Departed sorting facility"))
	if got := Classify(snap); got != StatusInTransit {
		t.Errorf("expected %q, got %q", StatusInTransit, got)
	}
}

func TestClassify_OnlyLatestEventCounts(t *testing.T) {
	// An earlier exception must not leak into the classification once a newer
	// event supersedes it.
	older := event("exception", "Delivery attempt failed")
	older.Timestamp = older.Timestamp.Add(-24 * time.Hour)
	snap := snapshotWithEvents(older, event("ofd", "With courier"))

	if got := Classify(snap); got != StatusOutForDelivery {
		t.Errorf("expected %q, got %q", StatusOutForDelivery, got)
	}
}

// ---------------------------------------------------------------------------
// Empty-history tests
// ---------------------------------------------------------------------------

func TestClassify_NoEventsWithMetadata(t *testing.T) {
	snap := &ShipmentSnapshot{TrackingID: "TEST123", Carrier: "delhivery"}
	if got := Classify(snap); got != StatusInfoReceived {
		t.Errorf("expected %q, got %q", StatusInfoReceived, got)
	}

	snap = &ShipmentSnapshot{
		TrackingID:        "TEST123",
		EstimatedDelivery: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	}
	if got := Classify(snap); got != StatusInfoReceived {
		t.Errorf("estimated delivery only: expected %q, got %q", StatusInfoReceived, got)
	}
}

func TestClassify_NoEventsNoMetadata(t *testing.T) {
	snap := &ShipmentSnapshot{TrackingID: "TEST123"}
	if got := Classify(snap); got != StatusUnknown {
		t.Errorf("expected %q, got %q", StatusUnknown, got)
	}
}

func TestClassify_NilSnapshot(t *testing.T) {
	if got := Classify(nil); got != StatusUnknown {
		t.Errorf("expected %q, got %q", StatusUnknown, got)
	}
}

// ---------------------------------------------------------------------------
// Determinism
// ---------------------------------------------------------------------------

func TestClassify_Deterministic(t *testing.T) {
	snap := snapshotWithEvents(
		event("pu", "Picked up"),
		event("it", "In transit"),
		event("ofd", "Out for delivery"),
	)
	first := Classify(snap)
	for i := 0; i < 10; i++ {
		if got := Classify(snap); got != first {
			t.Fatalf("classification changed between calls: %q then %q", first, got)
		}
	}
	if len(snap.Events) != 3 {
		t.Errorf("snapshot mutated: expected 3 events, got %d", len(snap.Events))
	}
}

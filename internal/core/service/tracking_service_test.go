package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub tracking client
// ---------------------------------------------------------------------------

type stubTrackingClient struct {
	snap   *domain.ShipmentSnapshot
	err    error
	lastID string
	calls  int
}

func (c *stubTrackingClient) Track(_ context.Context, trackingID string) (*domain.ShipmentSnapshot, error) {
	c.lastID = trackingID
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.snap, nil
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Track tests
// ---------------------------------------------------------------------------

func TestTrackingService_Track_Success(t *testing.T) {
	client := &stubTrackingClient{
		snap: &domain.ShipmentSnapshot{
			TrackingID: "TEST123",
			Carrier:    "bluedart",
			Events: []domain.TrackingEvent{
				{Timestamp: ts("2026-01-30 14:23:00"), Location: "Mumbai", Description: "In transit", RawStatus: "IT"},
			},
		},
	}
	svc := NewTrackingService(client, discardLogger)

	report, err := svc.Track(context.Background(), "TEST123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.StatusInTransit {
		t.Errorf("expected %q, got %q", domain.StatusInTransit, report.Status)
	}
	if !strings.Contains(report.Summary, "BLUEDART") {
		t.Errorf("summary missing carrier:\n%s", report.Summary)
	}
	if client.calls != 1 {
		t.Errorf("expected exactly 1 outbound call, got %d", client.calls)
	}
}

func TestTrackingService_Track_TrimsID(t *testing.T) {
	client := &stubTrackingClient{snap: &domain.ShipmentSnapshot{TrackingID: "TEST123"}}
	svc := NewTrackingService(client, discardLogger)

	_, err := svc.Track(context.Background(), "  TEST123  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastID != "TEST123" {
		t.Errorf("expected trimmed ID %q, got %q", "TEST123", client.lastID)
	}
}

func TestTrackingService_Track_EmptyID(t *testing.T) {
	client := &stubTrackingClient{}
	svc := NewTrackingService(client, discardLogger)

	for _, id := range []string{"", "   "} {
		_, err := svc.Track(context.Background(), id)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("id %q: expected ErrInvalidInput, got %v", id, err)
		}
	}
	if client.calls != 0 {
		t.Errorf("empty IDs must not reach the client, got %d calls", client.calls)
	}
}

func TestTrackingService_Track_PropagatesClientErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrUnauthorized, domain.ErrNetwork, domain.ErrParse, domain.ErrRemote} {
		client := &stubTrackingClient{err: sentinel}
		svc := NewTrackingService(client, discardLogger)

		_, err := svc.Track(context.Background(), "TEST123")
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %v to propagate, got %v", sentinel, err)
		}
		if client.calls != 1 {
			t.Errorf("no retries allowed, got %d calls", client.calls)
		}
	}
}

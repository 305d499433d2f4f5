package domain

import (
	"errors"
	"time"
)

// ShipmentStatus is the derived, human-relevant classification of a
// shipment's current state. It is computed from a ShipmentSnapshot on every
// render and never stored.
type ShipmentStatus string

const (
	StatusDelivered      ShipmentStatus = "Delivered"
	StatusOutForDelivery ShipmentStatus = "OutForDelivery"
	StatusInTransit      ShipmentStatus = "InTransit"
	StatusException      ShipmentStatus = "Exception"
	StatusPickedUp       ShipmentStatus = "PickedUp"
	StatusInfoReceived   ShipmentStatus = "InfoReceived"
	StatusUnknown        ShipmentStatus = "Unknown"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrNotFound = errors.New("shipment not found")
var ErrUnauthorized = errors.New("unauthorized")
var ErrRemote = errors.New("remote API error")
var ErrNetwork = errors.New("network failure")
var ErrParse = errors.New("malformed response")

// TrackingEvent is one timestamped entry in a shipment's history, as reported
// by the carrier/aggregator.
type TrackingEvent struct {
	Timestamp   time.Time
	Location    string // optional
	Description string
	RawStatus   string
}

// ShipmentSnapshot is the complete parsed result of one tracking fetch.
// Events are ordered chronologically ascending (last event = latest).
// Optional fields are zero-valued when absent; the snapshot is never mutated
// after construction.
type ShipmentSnapshot struct {
	TrackingID        string
	Carrier           string
	Events            []TrackingEvent
	EstimatedDelivery time.Time // optional
	DeliveredAt       time.Time // optional
	DeliveredLocation string    // optional
}

// Latest returns the most recent tracking event, or nil when there are none.
func (s *ShipmentSnapshot) Latest() *TrackingEvent {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}

// HasMetadata reports whether the snapshot carries any shipment metadata
// beyond the (possibly empty) event history.
func (s *ShipmentSnapshot) HasMetadata() bool {
	return s.Carrier != "" || !s.EstimatedDelivery.IsZero() || !s.DeliveredAt.IsZero()
}

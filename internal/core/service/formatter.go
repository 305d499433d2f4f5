package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
)

// Placeholders rendered when a template field is absent from the snapshot.
// A missing optional field is never an error and is never silently dropped.
const (
	placeholderLocation = "location unknown"
	placeholderDate     = "date unavailable"
	placeholderDetails  = "no details provided"
	unknownCarrier      = "Unknown Carrier"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// RenderSnapshot classifies a snapshot and renders the template for its
// status. It is a total function: for any snapshot it returns a status and a
// non-empty summary, substituting placeholders for missing optional fields.
func RenderSnapshot(snap *domain.ShipmentSnapshot) (domain.ShipmentStatus, string) {
	status := domain.Classify(snap)
	if snap == nil {
		return status, "❓ No tracking information available."
	}

	carrier := carrierLabel(snap.Carrier)
	latest := snap.Latest()

	var b strings.Builder
	switch status {
	case domain.StatusDelivered:
		fmt.Fprintf(&b, "✅ Delivered via %s\n", carrier)
		fmt.Fprintf(&b, "   Delivered on: %s\n", deliveredDate(snap))
		fmt.Fprintf(&b, "   Location: %s", deliveredLocation(snap))

	case domain.StatusOutForDelivery:
		fmt.Fprintf(&b, "🚛 Out for delivery via %s\n", carrier)
		fmt.Fprintf(&b, "   Current facility: %s", eventLocation(latest))

	case domain.StatusException:
		fmt.Fprintf(&b, "⚠️ Delivery exception via %s\n", carrier)
		fmt.Fprintf(&b, "   Issue: %s\n", eventDescription(latest))
		fmt.Fprintf(&b, "   Location: %s", eventLocation(latest))

	case domain.StatusPickedUp:
		fmt.Fprintf(&b, "📦 Picked up via %s\n", carrier)
		fmt.Fprintf(&b, "   Origin: %s", eventLocation(latest))

	case domain.StatusInTransit:
		fmt.Fprintf(&b, "🚚 In transit via %s\n", carrier)
		fmt.Fprintf(&b, "   Current location: %s\n", eventLocation(latest))
		fmt.Fprintf(&b, "   Latest update: %s\n", eventDescription(latest))
		fmt.Fprintf(&b, "   Estimated delivery: %s\n", dateField(snap.EstimatedDelivery, "no estimate available"))
		fmt.Fprintf(&b, "   Last updated: %s\n", eventTimestamp(latest))
		fmt.Fprintf(&b, "   Total events: %d", len(snap.Events))

	case domain.StatusInfoReceived:
		fmt.Fprintf(&b, "📋 Shipment information received by %s\n", carrier)
		b.WriteString("   Tracking has not started yet.")

	default:
		fmt.Fprintf(&b, "❓ No tracking information available for %q.", snap.TrackingID)
	}
	return status, b.String()
}

// carrierLabel formats a carrier slug for display.
func carrierLabel(slug string) string {
	if slug == "" {
		return unknownCarrier
	}
	return strings.ToUpper(slug)
}

func deliveredDate(snap *domain.ShipmentSnapshot) string {
	if !snap.DeliveredAt.IsZero() {
		return snap.DeliveredAt.Format(dateLayout)
	}
	if latest := snap.Latest(); latest != nil && !latest.Timestamp.IsZero() {
		return latest.Timestamp.Format(dateLayout)
	}
	return placeholderDate
}

func deliveredLocation(snap *domain.ShipmentSnapshot) string {
	if snap.DeliveredLocation != "" {
		return snap.DeliveredLocation
	}
	return eventLocation(snap.Latest())
}

func eventLocation(e *domain.TrackingEvent) string {
	if e == nil || e.Location == "" {
		return placeholderLocation
	}
	return e.Location
}

func eventDescription(e *domain.TrackingEvent) string {
	if e == nil || e.Description == "" {
		return placeholderDetails
	}
	return e.Description
}

func eventTimestamp(e *domain.TrackingEvent) string {
	if e == nil || e.Timestamp.IsZero() {
		return placeholderDate
	}
	return e.Timestamp.Format(timestampLayout)
}

func dateField(t time.Time, placeholder string) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format(dateLayout)
}

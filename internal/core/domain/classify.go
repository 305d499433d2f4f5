package domain

import "strings"

// Status vocabularies observed in eShipz responses: the aggregator's own tags
// plus the short carrier codes that show up in raw checkpoint data.
var (
	deliveredCodes = []string{"delivered", "dl", "dlvd", "ok"}
	outForDelivery = []string{"outfordelivery", "out_for_delivery", "ofd", "od"}
	exceptionCodes = []string{"exception", "ex", "failed", "failure", "rto", "ndr", "undelivered", "delayed"}
	pickedUpCodes  = []string{"pickedup", "picked_up", "pu", "pud", "pickup"}
)

// Classify assigns exactly one ShipmentStatus to a snapshot. It is a pure
// function: the same snapshot always yields the same status. Precedence is
// evaluated top to bottom, first match wins; a set DeliveredAt wins
// unconditionally regardless of what the latest event says.
func Classify(snap *ShipmentSnapshot) ShipmentStatus {
	if snap == nil {
		return StatusUnknown
	}
	if !snap.DeliveredAt.IsZero() {
		return StatusDelivered
	}

	if latest := snap.Latest(); latest != nil {
		switch {
		case matchesEvent(latest, deliveredCodes):
			return StatusDelivered
		case matchesEvent(latest, outForDelivery) || describes(latest, "out for delivery"):
			return StatusOutForDelivery
		case matchesEvent(latest, exceptionCodes) || describes(latest, "exception", "delay", "unable to deliver", "return to origin", "undelivered", "not delivered", "not be delivered"):
			return StatusException
		// Delivered wording is matched after the exception phrases so that
		// "undelivered" and "could not be delivered" stay exceptions.
		case describes(latest, "delivered"):
			return StatusDelivered
		case matchesEvent(latest, pickedUpCodes) || describes(latest, "picked up", "pickup complete"):
			return StatusPickedUp
		default:
			return StatusInTransit
		}
	}

	if snap.HasMetadata() {
		return StatusInfoReceived
	}
	return StatusUnknown
}

// matchesEvent checks the event's raw status code against a vocabulary.
// Codes are compared case-insensitively with separators stripped, so
// "Out_For_Delivery", "OutForDelivery" and "OFD" all land in the same bucket.
func matchesEvent(e *TrackingEvent, codes []string) bool {
	raw := normalizeCode(e.RawStatus)
	if raw == "" {
		return false
	}
	for _, c := range codes {
		if raw == normalizeCode(c) {
			return true
		}
	}
	return false
}

// describes reports whether the event description contains any of the given
// phrases, case-insensitively.
func describes(e *TrackingEvent, phrases ...string) bool {
	desc := strings.ToLower(e.Description)
	if desc == "" {
		return false
	}
	for _, p := range phrases {
		if strings.Contains(desc, p) {
			return true
		}
	}
	return false
}

func normalizeCode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

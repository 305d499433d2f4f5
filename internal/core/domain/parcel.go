package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Parcel limits enforced before a shipment is submitted. The volumetric
// divisor is the standard used by most Indian carriers.
const (
	MaxWeightKg       = 300.0
	MaxDimensionCm    = 300.0
	VolumetricDivisor = 5000.0
)

var nonDigits = regexp.MustCompile(`\D`)
var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// NormalizePhone reduces an Indian mobile number to its 10-digit form,
// stripping a leading country code. Returns "" when the number is not a
// plausible Indian mobile (10 digits starting 6-9).
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	if strings.HasPrefix(digits, "91") && len(digits) == 12 {
		digits = digits[2:]
	}
	if len(digits) != 10 || !strings.ContainsRune("6789", rune(digits[0])) {
		return ""
	}
	return digits
}

// ValidPincode reports whether s is a valid 6-digit Indian pincode.
func ValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// ValidateParcel checks weight and dimensions against carrier limits.
// A nil return means the parcel is acceptable.
func ValidateParcel(weightKg, lengthCm, widthCm, heightCm float64) error {
	if weightKg <= 0 {
		return fmt.Errorf("%w: parcel weight must be greater than 0", ErrInvalidInput)
	}
	if weightKg > MaxWeightKg {
		return fmt.Errorf("%w: parcel weight %.1fkg exceeds max allowed (%.0fkg)", ErrInvalidInput, weightKg, MaxWeightKg)
	}
	dims := map[string]float64{"length": lengthCm, "width": widthCm, "height": heightCm}
	for _, name := range []string{"length", "width", "height"} {
		val := dims[name]
		if val < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, name)
		}
		if val > MaxDimensionCm {
			return fmt.Errorf("%w: %s %.1fcm exceeds max allowed (%.0fcm)", ErrInvalidInput, name, val, MaxDimensionCm)
		}
	}
	return nil
}

// ChargeableWeight returns the higher of actual and volumetric weight,
// rounded to two decimals.
func ChargeableWeight(actualKg, lengthCm, widthCm, heightCm float64) float64 {
	volumetric := lengthCm * widthCm * heightCm / VolumetricDivisor
	return math.Round(math.Max(actualKg, volumetric)*100) / 100
}

// InferServiceType picks a service type from parcel weight and carrier.
// Heavy parcels go surface, everything else express; Delhivery has its own
// surface slug.
func InferServiceType(weightKg float64, carrierSlug string) string {
	if carrierSlug == "delhivery" {
		if weightKg > 10 {
			return "delhivery-surface"
		}
		return "delhivery"
	}
	if weightKg > 30 {
		return "surface"
	}
	return "express"
}

var residentialKeywords = []string{"home", "house", "flat", "apartment", "villa", "lane", "society"}
var businessKeywords = []string{"pvt", "ltd", "llp", "inc", "corp", "technologies", "enterprises"}

// InferAddressType guesses residential vs business from the company name and
// street line. Business keywords win over residential ones.
func InferAddressType(company, street string) string {
	text := strings.ToLower(company + " " + street)
	for _, k := range businessKeywords {
		if strings.Contains(text, k) {
			return "business"
		}
	}
	for _, k := range residentialKeywords {
		if strings.Contains(text, k) {
			return "residential"
		}
	}
	if company != "" {
		return "business"
	}
	return "residential"
}

var invoiceDateLayouts = []string{"02-01-2006", "02/01/2006", "2006/01/02", "02 Jan 2006"}

// NormalizeDate converts a date in any accepted layout to YYYY-MM-DD.
// Returns "" when no layout matches.
func NormalizeDate(s string) string {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

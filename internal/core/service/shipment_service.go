package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

type ShipmentService struct {
	api      ports.ShipmentAPI
	pincodes ports.PincodeLookup
	logger   zerolog.Logger
}

func NewShipmentService(api ports.ShipmentAPI, pincodes ports.PincodeLookup, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{api: api, pincodes: pincodes, logger: logger}
}

// Create validates and enriches the shipment details, submits them to the
// carrier API, and renders the result. Validation failures come back as
// readable errors the caller can correct and re-submit.
func (s *ShipmentService) Create(ctx context.Context, input ports.CreateShipmentInput) (string, error) {
	slug := domain.CarrierSlug(input.CarrierDescription)

	if err := checkRequired(input); err != nil {
		return "", err
	}

	fromPhone := domain.NormalizePhone(input.ShipFrom.Phone)
	if fromPhone == "" {
		return "", fmt.Errorf("%w: invalid shipper phone number %q, must be a valid Indian mobile number (10 digits)", domain.ErrInvalidInput, input.ShipFrom.Phone)
	}
	toPhone := domain.NormalizePhone(input.ShipTo.Phone)
	if toPhone == "" {
		return "", fmt.Errorf("%w: invalid consignee phone number %q, must be a valid Indian mobile number (10 digits)", domain.ErrInvalidInput, input.ShipTo.Phone)
	}

	if !domain.ValidPincode(input.ShipFrom.Pincode) {
		return "", fmt.Errorf("%w: invalid shipper pincode %q, must be a valid 6-digit Indian pincode", domain.ErrInvalidInput, input.ShipFrom.Pincode)
	}
	if !domain.ValidPincode(input.ShipTo.Pincode) {
		return "", fmt.Errorf("%w: invalid consignee pincode %q, must be a valid 6-digit Indian pincode", domain.ErrInvalidInput, input.ShipTo.Pincode)
	}

	p := input.Parcel
	hasDims := p.LengthCm > 0 || p.WidthCm > 0 || p.HeightCm > 0
	if hasDims {
		if err := domain.ValidateParcel(p.WeightKg, p.LengthCm, p.WidthCm, p.HeightCm); err != nil {
			return "", err
		}
	} else if p.WeightKg > domain.MaxWeightKg {
		return "", fmt.Errorf("%w: parcel weight %.1fkg exceeds max allowed (%.0fkg)", domain.ErrInvalidInput, p.WeightKg, domain.MaxWeightKg)
	}

	codAmount := input.CODAmount
	if input.IsCOD && codAmount <= 0 {
		return "", fmt.Errorf("%w: COD amount must be greater than 0 when COD is enabled", domain.ErrInvalidInput)
	}
	if !input.IsCOD {
		codAmount = 0 // silently drop an inconsistent amount
	}

	chargeable := p.WeightKg
	if p.LengthCm > 0 && p.WidthCm > 0 && p.HeightCm > 0 {
		chargeable = domain.ChargeableWeight(p.WeightKg, p.LengthCm, p.WidthCm, p.HeightCm)
	}

	serviceType := input.ServiceType
	if serviceType == "" {
		serviceType = domain.InferServiceType(p.WeightKg, slug)
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate != "" {
		normalized := domain.NormalizeDate(invoiceDate)
		if normalized == "" {
			return "", fmt.Errorf("%w: invalid invoice date format %q, accepted formats: DD-MM-YYYY, DD/MM/YYYY, YYYY/MM/DD, DD Mon YYYY", domain.ErrInvalidInput, invoiceDate)
		}
		invoiceDate = normalized
	}

	shipFrom := input.ShipFrom
	shipTo := input.ShipTo
	s.backfillLocation(ctx, &shipFrom)
	s.backfillLocation(ctx, &shipTo)

	var missingStates []string
	if shipFrom.City != "" && shipFrom.State == "" {
		if inferred := domain.InferState(shipFrom.City); inferred != "" {
			shipFrom.State = inferred
		} else {
			missingStates = append(missingStates, fmt.Sprintf("sender (city: %s)", shipFrom.City))
		}
	}
	if shipTo.City != "" && shipTo.State == "" {
		if inferred := domain.InferState(shipTo.City); inferred != "" {
			shipTo.State = inferred
		} else {
			missingStates = append(missingStates, fmt.Sprintf("consignee (city: %s)", shipTo.City))
		}
	}
	if len(missingStates) == 1 {
		return "", fmt.Errorf("%w: please provide the state for the %s", domain.ErrInvalidInput, missingStates[0])
	}
	if len(missingStates) > 1 {
		return "", fmt.Errorf("%w: please provide the states for: %s", domain.ErrInvalidInput, strings.Join(missingStates, ", "))
	}

	toEmail := shipTo.Email
	if toEmail == "" {
		toEmail = shipFrom.Email
	}

	invoiceValue := 0.0
	if input.InvoiceNumber != "" && invoiceDate != "" {
		invoiceValue = input.Item.Price * float64(max(input.Item.Quantity, 1))
	}

	order := ports.ShipmentOrder{
		Slug:               slug,
		ServiceType:        serviceType,
		CustomerReference:  input.CustomerReference,
		ParcelContents:     p.Description,
		IsDocument:         input.IsDocument,
		IsCOD:              input.IsCOD,
		CODAmount:          codAmount,
		ChargeableWeightKg: chargeable,
		ShipFrom:           resolvedParty(shipFrom, fromPhone),
		ShipTo:             resolvedParty(shipTo, toPhone),
		Parcel:             ports.Parcel(p),
		Item: ports.Item{
			Description: input.Item.Description,
			Quantity:    max(input.Item.Quantity, 1),
			Price:       input.Item.Price,
			SKU:         input.Item.SKU,
			HSNCode:     input.Item.HSNCode,
		},
		VendorID:      input.VendorID,
		InvoiceNumber: input.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		InvoiceValue:  invoiceValue,
	}
	order.ShipTo.Email = toEmail

	creation, err := s.api.CreateShipment(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("shipment creation failed")
		return "", err
	}

	s.logger.Info().
		Str("order_id", creation.OrderID).
		Strs("tracking_numbers", creation.TrackingNumbers).
		Str("slug", slug).
		Msg("shipment created")

	return renderCreation(creation), nil
}

// AllocateDocket requests a docket (AWB) allocation and renders the result.
func (s *ShipmentService) AllocateDocket(ctx context.Context, input ports.DocketInput) (string, error) {
	if input.CarrierID == "" {
		return "", fmt.Errorf("%w: carrier_id is required", domain.ErrInvalidInput)
	}
	if !domain.ValidPincode(input.PickupPincode) || !domain.ValidPincode(input.DeliveryPincode) {
		return "", fmt.Errorf("%w: pickup and delivery must be valid 6-digit pincodes", domain.ErrInvalidInput)
	}
	if input.BoxCount <= 0 {
		input.BoxCount = 1
	}

	allocation, err := s.api.AllocateDocket(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("carrier_id", input.CarrierID).Msg("docket allocation failed")
		return "", err
	}

	s.logger.Info().
		Str("docket_number", allocation.DocketNumber).
		Str("carrier_id", input.CarrierID).
		Msg("docket allocated")

	return renderDocket(allocation), nil
}

// backfillLocation fills missing city/state from the pincode, best-effort:
// lookup failures never block shipment creation.
func (s *ShipmentService) backfillLocation(ctx context.Context, party *ports.PartyInput) {
	if party.Pincode == "" || (party.City != "" && party.State != "") {
		return
	}
	info, err := s.pincodes.Lookup(ctx, party.Pincode)
	if err != nil {
		s.logger.Debug().Err(err).Str("pincode", party.Pincode).Msg("pincode lookup failed")
		return
	}
	if info == nil {
		return
	}
	if party.City == "" {
		party.City = info.City
	}
	if party.State == "" {
		party.State = info.State
	}
}

func checkRequired(input ports.CreateShipmentInput) error {
	var missing []string
	if input.ShipFrom.Name == "" {
		missing = append(missing, "ship_from_name")
	}
	if input.ShipFrom.Pincode == "" {
		missing = append(missing, "ship_from_pincode")
	}
	if input.ShipFrom.Phone == "" {
		missing = append(missing, "ship_from_phone")
	}
	if input.ShipTo.Name == "" {
		missing = append(missing, "ship_to_name")
	}
	if input.ShipTo.Pincode == "" {
		missing = append(missing, "ship_to_pincode")
	}
	if input.ShipTo.Phone == "" {
		missing = append(missing, "ship_to_phone")
	}
	if input.Parcel.WeightKg <= 0 {
		missing = append(missing, "parcel_weight_kg")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func resolvedParty(p ports.PartyInput, phone string) ports.Party {
	addrType := "residential"
	if p.Company != "" || p.Street1 != "" {
		addrType = domain.InferAddressType(p.Company, p.Street1)
	}
	return ports.Party{
		Name:    p.Name,
		Company: p.Company,
		Street1: p.Street1,
		Street2: p.Street2,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
		Phone:   phone,
		Email:   p.Email,
		TaxID:   p.GSTIN,
		Type:    addrType,
	}
}

func renderCreation(c *ports.ShipmentCreation) string {
	var b strings.Builder
	b.WriteString("SHIPMENT CREATED SUCCESSFULLY\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if c.OrderID != "" {
		fmt.Fprintf(&b, "Order ID: %s\n", c.OrderID)
	}
	switch len(c.TrackingNumbers) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "Tracking Number: %s\n", c.TrackingNumbers[0])
	default:
		fmt.Fprintf(&b, "Tracking Numbers (%d boxes):\n", len(c.TrackingNumbers))
		for i, tn := range c.TrackingNumbers {
			fmt.Fprintf(&b, "   Box %d: %s\n", i+1, tn)
		}
	}
	if c.Carrier != "" {
		fmt.Fprintf(&b, "Carrier: %s\n", carrierLabel(c.Carrier))
	}
	if c.Status != "" {
		fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(c.Status))
	}
	if c.CustomerReference != "" {
		fmt.Fprintf(&b, "Reference: %s\n", c.CustomerReference)
	}
	if c.ChargeWeight > 0 {
		unit := c.ChargeWeightUnit
		if unit == "" {
			unit = "kg"
		}
		fmt.Fprintf(&b, "Chargeable Weight: %g %s\n", c.ChargeWeight, unit)
	}
	if c.TotalCharge > 0 {
		ccy := c.TotalChargeCcy
		if ccy == "" {
			ccy = "INR"
		}
		fmt.Fprintf(&b, "Total Charge: %s %g\n", ccy, c.TotalCharge)
	}
	if c.DeliveryDate != "" {
		fmt.Fprintf(&b, "Expected Delivery: %s\n", c.DeliveryDate)
	}
	if c.TransitTime != "" {
		fmt.Fprintf(&b, "Transit Time: %s\n", c.TransitTime)
	}
	if c.LabelURL != "" {
		fmt.Fprintf(&b, "\nShipping Label: %s\n", c.LabelURL)
	}
	if c.TrackingLink != "" {
		fmt.Fprintf(&b, "Track Online: %s\n", c.TrackingLink)
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(&b, "\nCreated: %s\n", c.CreatedAt)
	}
	return b.String()
}

func renderDocket(d *ports.DocketAllocation) string {
	var b strings.Builder
	b.WriteString("DOCKET ALLOCATED SUCCESSFULLY\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if d.DocketNumber != "" {
		fmt.Fprintf(&b, "Docket/AWB Number: %s\n", d.DocketNumber)
	}
	if d.Carrier != "" {
		fmt.Fprintf(&b, "Carrier: %s\n", carrierLabel(d.Carrier))
	}
	if d.PickupPincode != "" {
		fmt.Fprintf(&b, "Pickup PIN: %s\n", d.PickupPincode)
	}
	if d.DeliveryPincode != "" {
		fmt.Fprintf(&b, "Delivery PIN: %s\n", d.DeliveryPincode)
	}
	if d.OrderReference != "" {
		fmt.Fprintf(&b, "Order Reference: %s\n", d.OrderReference)
	}
	if len(d.BoxSeries) == 1 {
		fmt.Fprintf(&b, "Box Number: %s\n", d.BoxSeries[0])
	} else if len(d.BoxSeries) > 1 {
		fmt.Fprintf(&b, "\nBox Series (%d boxes):\n", len(d.BoxSeries))
		for i, box := range d.BoxSeries {
			fmt.Fprintf(&b, "   Box %d: %s\n", i+1, box)
		}
	}
	if d.ShipMode != "" {
		fmt.Fprintf(&b, "Ship Mode: %s\n", strings.ToUpper(d.ShipMode))
	}
	if d.PaymentMode != "" {
		fmt.Fprintf(&b, "Payment Mode: %s\n", strings.ToUpper(d.PaymentMode))
	}
	return b.String()
}

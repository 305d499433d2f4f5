package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

type OrderService struct {
	orders    ports.OrderAPI
	shipments ports.ShipmentService
	logger    zerolog.Logger
}

func NewOrderService(orders ports.OrderAPI, shipments ports.ShipmentService, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, shipments: shipments, logger: logger}
}

// CreateFromOrder fetches an order, merges its receiver/shipper/parcel data
// with the caller's shipper overrides, and runs the standard shipment
// creation pipeline with the order ID as the customer reference.
func (s *OrderService) CreateFromOrder(ctx context.Context, input ports.CreateFromOrderInput) (string, error) {
	if strings.TrimSpace(input.OrderID) == "" {
		return "", fmt.Errorf("%w: order_id must not be empty", domain.ErrInvalidInput)
	}

	order, err := s.orders.FetchOrder(ctx, input.OrderID)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", input.OrderID).Msg("order fetch failed")
		return "", err
	}

	shipFrom := mergeParty(input.ShipFrom, order.Shipper)
	shipTo := ports.PartyInput{
		Name:    order.Receiver.Name,
		Company: order.Receiver.Company,
		Street1: order.Receiver.Street,
		City:    order.Receiver.City,
		State:   order.Receiver.State,
		Pincode: order.Receiver.Pincode,
		Phone:   order.Receiver.Phone,
		Email:   order.Receiver.Email,
	}

	item := ports.ItemInput{Quantity: 1}
	if len(order.Items) > 0 {
		first := order.Items[0]
		item = ports.ItemInput{
			Description: first.Description,
			Quantity:    first.Quantity,
			Price:       first.Price,
			SKU:         first.SKU,
			HSNCode:     first.HSNCode,
		}
	}

	parcel := ports.ParcelInput{Description: item.Description}
	if len(order.Parcels) > 0 {
		first := order.Parcels[0]
		parcel.WeightKg = first.WeightKg
		parcel.LengthCm = first.LengthCm
		parcel.WidthCm = first.WidthCm
		parcel.HeightCm = first.HeightCm
	}

	if err := checkOrderFields(shipFrom, shipTo, parcel); err != nil {
		return "", err
	}

	s.logger.Info().Str("order_id", input.OrderID).Msg("creating shipment from order")

	return s.shipments.Create(ctx, ports.CreateShipmentInput{
		CarrierDescription: input.CarrierDescription,
		ServiceType:        input.ServiceType,
		CustomerReference:  input.OrderID,
		ShipFrom:           shipFrom,
		ShipTo:             shipTo,
		Parcel:             parcel,
		Item:               item,
		IsCOD:              order.IsCOD,
		CODAmount:          order.CODAmount,
		InvoiceNumber:      order.InvoiceNumber,
		InvoiceDate:        order.InvoiceDate,
		VendorID:           input.VendorID,
	})
}

// mergeParty prefers caller-supplied overrides, falling back to the order's
// shipper address field by field.
func mergeParty(override ports.PartyInput, fallback ports.OrderParty) ports.PartyInput {
	merged := override
	if merged.Name == "" {
		merged.Name = fallback.Name
	}
	if merged.Company == "" {
		merged.Company = fallback.Company
	}
	if merged.Street1 == "" {
		merged.Street1 = fallback.Street
	}
	if merged.City == "" {
		merged.City = fallback.City
	}
	if merged.State == "" {
		merged.State = fallback.State
	}
	if merged.Pincode == "" {
		merged.Pincode = fallback.Pincode
	}
	if merged.Phone == "" {
		merged.Phone = fallback.Phone
	}
	if merged.Email == "" {
		merged.Email = fallback.Email
	}
	if merged.GSTIN == "" {
		merged.GSTIN = fallback.GSTIN
	}
	return merged
}

func checkOrderFields(shipFrom, shipTo ports.PartyInput, parcel ports.ParcelInput) error {
	var missing []string
	if shipTo.Name == "" {
		missing = append(missing, "receiver name")
	}
	if shipTo.Pincode == "" {
		missing = append(missing, "receiver pincode")
	}
	if shipTo.Phone == "" {
		missing = append(missing, "receiver phone")
	}
	if shipFrom.Name == "" {
		missing = append(missing, "shipper name (ship_from_name parameter)")
	}
	if shipFrom.Pincode == "" {
		missing = append(missing, "shipper pincode (ship_from_pincode parameter)")
	}
	if shipFrom.Phone == "" {
		missing = append(missing, "shipper phone (ship_from_phone parameter)")
	}
	if parcel.WeightKg <= 0 {
		missing = append(missing, "parcel weight")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: cannot create shipment, missing required fields: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

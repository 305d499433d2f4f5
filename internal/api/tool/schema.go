package tool

// Argument structs the MCP request payloads are bound into. Validation tags
// mirror what the upstream API will reject anyway, so the model gets a fast,
// readable correction instead of a remote error.

type trackShipmentArgs struct {
	TrackingID string `json:"tracking_id" validate:"required"`
}

type carrierPerformanceArgs struct {
	SourcePin      string `json:"source_pin"      validate:"required,len=6,numeric"`
	DestinationPin string `json:"destination_pin" validate:"required,len=6,numeric"`
}

type createShipmentArgs struct {
	CarrierDescription string `json:"carrier_description"`
	ServiceType        string `json:"service_type"`
	CustomerReference  string `json:"customer_reference"`

	ShipFromName    string `json:"ship_from_name"    validate:"required"`
	ShipFromCompany string `json:"ship_from_company"`
	ShipFromStreet1 string `json:"ship_from_street1"`
	ShipFromStreet2 string `json:"ship_from_street2"`
	ShipFromCity    string `json:"ship_from_city"`
	ShipFromState   string `json:"ship_from_state"`
	ShipFromPincode string `json:"ship_from_pincode" validate:"required,len=6,numeric"`
	ShipFromPhone   string `json:"ship_from_phone"   validate:"required"`
	ShipFromEmail   string `json:"ship_from_email"`
	ShipFromGSTIN   string `json:"ship_from_gstin"`

	ShipToName    string `json:"ship_to_name"    validate:"required"`
	ShipToCompany string `json:"ship_to_company"`
	ShipToStreet1 string `json:"ship_to_street1"`
	ShipToStreet2 string `json:"ship_to_street2"`
	ShipToCity    string `json:"ship_to_city"`
	ShipToState   string `json:"ship_to_state"`
	ShipToPincode string `json:"ship_to_pincode" validate:"required,len=6,numeric"`
	ShipToPhone   string `json:"ship_to_phone"   validate:"required"`
	ShipToEmail   string `json:"ship_to_email"`

	ParcelDescription string  `json:"parcel_description"`
	ParcelWeightKg    float64 `json:"parcel_weight_kg" validate:"required,gt=0"`
	ParcelLengthCm    float64 `json:"parcel_length_cm"`
	ParcelWidthCm     float64 `json:"parcel_width_cm"`
	ParcelHeightCm    float64 `json:"parcel_height_cm"`

	ItemDescription string  `json:"item_description"`
	ItemQuantity    int     `json:"item_quantity"`
	ItemPrice       float64 `json:"item_price"`
	ItemSKU         string  `json:"item_sku"`
	ItemHSNCode     string  `json:"item_hsn_code"`

	IsCOD         bool    `json:"is_cod"`
	CODAmount     float64 `json:"cod_amount"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	IsDocument    bool    `json:"is_document"`
	VendorID      string  `json:"vendor_id"`
}

type allocateDocketArgs struct {
	CarrierID       string `json:"carrier_id"       validate:"required"`
	ShipMode        string `json:"ship_mode"        validate:"required"`
	PickupPincode   string `json:"pickup_pincode"   validate:"required,len=6,numeric"`
	DeliveryPincode string `json:"delivery_pincode" validate:"required,len=6,numeric"`
	PaymentMode     string `json:"payment_mode"     validate:"required"`
	OrderReference  string `json:"order_reference"`
	BoxCount        int    `json:"box_count"`
	ReturnBoxSeries *bool  `json:"return_box_series"` // nil means default (true)
}

type fetchAndCreateArgs struct {
	OrderID            string `json:"order_id" validate:"required"`
	CarrierDescription string `json:"carrier_description"`
	ServiceType        string `json:"service_type"`

	ShipFromName    string `json:"ship_from_name"`
	ShipFromCompany string `json:"ship_from_company"`
	ShipFromStreet1 string `json:"ship_from_street1"`
	ShipFromStreet2 string `json:"ship_from_street2"`
	ShipFromCity    string `json:"ship_from_city"`
	ShipFromState   string `json:"ship_from_state"`
	ShipFromPincode string `json:"ship_from_pincode"`
	ShipFromPhone   string `json:"ship_from_phone"`
	ShipFromEmail   string `json:"ship_from_email"`
	ShipFromGSTIN   string `json:"ship_from_gstin"`

	VendorID string `json:"vendor_id"`
}

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// IndustryData is the vertical-specific payload attached to an order. Exactly one
// of the five concrete payload types may be attached, and its category must agree
// with the category derived from the order's type; NewOrder enforces both.
//
// The interface is sealed: only the payload types in this package implement it,
// which makes the "one-of-five" attachment a closed sum rather than five nullable
// fields.
type IndustryData interface {
	// Category reports the vertical this payload belongs to.
	Category() IndustryCategory

	sealedIndustryData()
}

// EcommerceData carries e-commerce platform, customer, marketing, and subscription
// details for orders originating from online storefronts and marketplaces.
type EcommerceData struct {
	// Platform integration.
	PlatformOrderID string `json:"platform_order_id"`
	PlatformName    string `json:"platform_name"`
	CustomerEmail   string `json:"customer_email"`
	StoreID         string `json:"store_id,omitempty"`
	StoreName       string `json:"store_name,omitempty"`

	// Customer data.
	CustomerPhone         string           `json:"customer_phone,omitempty"`
	CustomerSegment       string           `json:"customer_segment,omitempty"` // VIP, regular, new, loyal
	CustomerLifetimeValue *decimal.Decimal `json:"customer_lifetime_value,omitempty"`

	// Marketing attribution.
	CampaignID   string `json:"campaign_id,omitempty"`
	UTMSource    string `json:"utm_source,omitempty"`
	UTMMedium    string `json:"utm_medium,omitempty"`
	UTMCampaign  string `json:"utm_campaign,omitempty"`
	AffiliateID  string `json:"affiliate_id,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`

	// Subscription data.
	IsSubscription            bool       `json:"is_subscription,omitempty"`
	SubscriptionID            string     `json:"subscription_id,omitempty"`
	SubscriptionType          string     `json:"subscription_type,omitempty"` // monthly, quarterly, annual
	SubscriptionFrequencyDays int        `json:"subscription_frequency_days,omitempty"`
	NextDeliveryDate          *time.Time `json:"next_delivery_date,omitempty"`

	// Returns and exchanges.
	ReturnPolicyDays int              `json:"return_policy_days,omitempty"`
	ExchangeAllowed  bool             `json:"exchange_allowed,omitempty"`
	RestockingFee    *decimal.Decimal `json:"restocking_fee,omitempty"`

	// Gift options.
	IsGift            bool   `json:"is_gift,omitempty"`
	GiftMessage       string `json:"gift_message,omitempty"`
	GiftWrapRequested bool   `json:"gift_wrap_requested,omitempty"`

	// Customer service.
	SpecialInstructions string `json:"special_instructions,omitempty"`
	PreviousOrderCount  int    `json:"previous_order_count,omitempty"`
}

func (*EcommerceData) Category() IndustryCategory { return CategoryEcommerce }
func (*EcommerceData) sealedIndustryData()        {}

// RetailData carries purchase-order, compliance, quality-control, and delivery-window
// details for retail distribution orders.
type RetailData struct {
	// Purchase order information.
	PONumber     string `json:"po_number"`
	VendorID     string `json:"vendor_id"`
	VendorName   string `json:"vendor_name"`
	BuyerID      string `json:"buyer_id,omitempty"`
	BuyerName    string `json:"buyer_name,omitempty"`
	BuyerContact string `json:"buyer_contact,omitempty"`
	PaymentTerms string `json:"payment_terms"`  // Net 30, Net 60, COD, ...
	DeliveryTerms string `json:"delivery_terms"` // FOB Origin, FOB Destination, DDP, ...
	Incoterms    string `json:"incoterms,omitempty"`
	Currency     string `json:"currency,omitempty"`

	// Store information.
	StoreChainID       string `json:"store_chain_id,omitempty"`
	StoreNumber        string `json:"store_number,omitempty"`
	StoreName          string `json:"store_name,omitempty"`
	DistributionCenter string `json:"distribution_center,omitempty"`

	// Compliance and certification.
	ComplianceCertifications []string `json:"compliance_certifications,omitempty"`
	SafetyDataSheetsRequired bool     `json:"safety_data_sheets_required,omitempty"`
	HazmatClassification     string   `json:"hazmat_classification,omitempty"`
	RegulatoryApprovals      []string `json:"regulatory_approvals,omitempty"`

	// Quality control.
	InspectionRequired    bool     `json:"inspection_required,omitempty"`
	InspectionType        string   `json:"inspection_type,omitempty"` // visual, sampling, full
	QualityStandards      []string `json:"quality_standards,omitempty"`
	BatchTrackingRequired bool     `json:"batch_tracking_required,omitempty"`
	LotTrackingRequired   bool     `json:"lot_tracking_required,omitempty"`

	// Pricing.
	VolumeDiscount       *decimal.Decimal `json:"volume_discount,omitempty"`
	EarlyPaymentDiscount *decimal.Decimal `json:"early_payment_discount,omitempty"`
	MinimumOrderValue    *decimal.Decimal `json:"minimum_order_value,omitempty"`

	// Delivery.
	DeliveryWindowStart *time.Time `json:"delivery_window_start,omitempty"`
	DeliveryWindowEnd   *time.Time `json:"delivery_window_end,omitempty"`
	LoadingDock         string     `json:"loading_dock,omitempty"`
	AppointmentRequired bool       `json:"appointment_required,omitempty"`
}

func (*RetailData) Category() IndustryCategory { return CategoryRetail }
func (*RetailData) sealedIndustryData()        {}

// FoodDeliveryData carries restaurant, timing, food-safety, and platform details for
// food delivery orders.
type FoodDeliveryData struct {
	// Restaurant information.
	RestaurantID      string            `json:"restaurant_id"`
	RestaurantName    string            `json:"restaurant_name"`
	RestaurantAddress map[string]string `json:"restaurant_address,omitempty"`
	RestaurantPhone   string            `json:"restaurant_phone,omitempty"`
	RestaurantEmail   string            `json:"restaurant_email,omitempty"`

	// Customer information.
	CustomerPhone        string `json:"customer_phone"`
	CustomerEmail        string `json:"customer_email,omitempty"`
	CustomerName         string `json:"customer_name,omitempty"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty"`
	ContactlessDelivery  bool   `json:"contactless_delivery,omitempty"`

	// Timing.
	PreparationTimeMinutes  int        `json:"preparation_time_minutes,omitempty"`
	EstimatedPrepCompletion *time.Time `json:"estimated_prep_completion,omitempty"`
	PickupTime              *time.Time `json:"pickup_time,omitempty"`
	DeliveryWindowStart     *time.Time `json:"delivery_window_start,omitempty"`
	DeliveryWindowEnd       *time.Time `json:"delivery_window_end,omitempty"`

	// Food safety and quality.
	TemperatureRequirements    string   `json:"temperature_requirements,omitempty"` // hot, cold, frozen, ambient
	AllergenInfo               []string `json:"allergen_info,omitempty"`
	SpecialDietaryRequirements []string `json:"special_dietary_requirements,omitempty"`
	FoodSafetySealRequired     bool     `json:"food_safety_seal_required,omitempty"`

	// Delivery platform integration.
	PlatformOrderID string           `json:"platform_order_id,omitempty"`
	PlatformName    string           `json:"platform_name,omitempty"` // uber_eats, doordash, grubhub
	PlatformFee     *decimal.Decimal `json:"platform_fee,omitempty"`
	DriverTip       *decimal.Decimal `json:"driver_tip,omitempty"`

	// Packaging.
	PackagingRequirements []string `json:"packaging_requirements,omitempty"`
	UtensilsRequested     bool     `json:"utensils_requested,omitempty"`
}

func (*FoodDeliveryData) Category() IndustryCategory { return CategoryFoodDelivery }
func (*FoodDeliveryData) sealedIndustryData()        {}

// ManufacturingData carries production schedule, materials, quality, and compliance
// details for manufacturing orders.
type ManufacturingData struct {
	// Production information.
	ProductionOrderID string `json:"production_order_id"`
	WorkOrderID       string `json:"work_order_id,omitempty"`
	BillOfMaterialsID string `json:"bill_of_materials_id,omitempty"`
	ProductCode       string `json:"product_code,omitempty"`

	// Production schedule.
	ProductionStartDate   *time.Time `json:"production_start_date,omitempty"`
	ProductionEndDate     *time.Time `json:"production_end_date,omitempty"`
	ProductionLine        string     `json:"production_line,omitempty"`
	ShiftInformation      string     `json:"shift_information,omitempty"`
	ProductionBatchNumber string     `json:"production_batch_number,omitempty"`

	// Raw materials.
	MaterialAvailabilityConfirmed bool `json:"material_availability_confirmed,omitempty"`

	// Quality control.
	QualityControlPoints      []string         `json:"quality_control_points,omitempty"`
	InspectionRequirements    []string         `json:"inspection_requirements,omitempty"`
	CertificationRequirements []string         `json:"certification_requirements,omitempty"`
	QualityStandards          []string         `json:"quality_standards,omitempty"`
	DefectTolerance           *decimal.Decimal `json:"defect_tolerance,omitempty"`

	// Compliance and regulations.
	SafetyRequirements    []string `json:"safety_requirements,omitempty"`
	TraceabilityRequired  bool     `json:"traceability_required,omitempty"`
	SerializationRequired bool     `json:"serialization_required,omitempty"`

	// Equipment and resources.
	EquipmentRequired   []string         `json:"equipment_required,omitempty"`
	LaborHoursEstimated *decimal.Decimal `json:"labor_hours_estimated,omitempty"`

	// Packaging.
	PackagingSpecifications string   `json:"packaging_specifications,omitempty"`
	LabelingRequirements    []string `json:"labeling_requirements,omitempty"`
}

func (*ManufacturingData) Category() IndustryCategory { return CategoryManufacturing }
func (*ManufacturingData) sealedIndustryData()        {}

// ThirdPartyData carries client, service, warehouse-operation, and SLA details for
// third-party logistics orders.
type ThirdPartyData struct {
	// Client information.
	ClientID            string `json:"client_id"`
	ClientName          string `json:"client_name"`
	ClientContact       string `json:"client_contact,omitempty"`
	ClientEmail         string `json:"client_email,omitempty"`
	ClientAccountNumber string `json:"client_account_number,omitempty"`

	// Service configuration.
	ServiceType       string `json:"service_type"`  // fulfillment, storage, cross_dock, returns
	ServiceLevel      string `json:"service_level"` // standard, expedited, white_glove
	FulfillmentCenter string `json:"fulfillment_center"`
	BillingModel      string `json:"billing_model"` // per_order, per_item, monthly, storage_based
	WhiteLabel        bool   `json:"white_label,omitempty"`
	ClientBranding    string `json:"client_branding,omitempty"`

	// Warehouse operations.
	StorageLocation         string   `json:"storage_location,omitempty"`
	HandlingInstructions    []string `json:"handling_instructions,omitempty"`
	SpecialHandlingRequired bool     `json:"special_handling_required,omitempty"`

	// Client integration.
	ClientSystem      string `json:"client_system,omitempty"`
	IntegrationMethod string `json:"integration_method,omitempty"` // API, EDI, FTP, manual
	DataFormat        string `json:"data_format,omitempty"`        // JSON, XML, CSV
	WebhookURL        string `json:"webhook_url,omitempty"`

	// Billing and SLA.
	BillingRate            *decimal.Decimal `json:"billing_rate,omitempty"`
	SLADeliveryTimeMinutes *int             `json:"sla_delivery_time,omitempty"`
	SLAAccuracyRequirement *decimal.Decimal `json:"sla_accuracy_requirement,omitempty"`
	AdditionalServices     []string         `json:"additional_services,omitempty"`

	// Value-added services.
	KittingRequired   bool `json:"kitting_required,omitempty"`
	LabelingRequired  bool `json:"labeling_required,omitempty"`
	CustomPackaging   bool `json:"custom_packaging,omitempty"`
	QualityInspection bool `json:"quality_inspection,omitempty"`

	// Reporting.
	ReportingFrequency        string `json:"reporting_frequency,omitempty"` // daily, weekly, monthly
	InventorySnapshotRequired bool   `json:"inventory_snapshot_required,omitempty"`
}

func (*ThirdPartyData) Category() IndustryCategory { return CategoryThirdParty }
func (*ThirdPartyData) sealedIndustryData()        {}

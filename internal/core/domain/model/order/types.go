package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// IndustryCategory is the business vertical an order belongs to. The category
// determines which payload, validator, processor, and status workflow apply.
type IndustryCategory string

const (
	CategoryEcommerce     IndustryCategory = "ecommerce"
	CategoryRetail        IndustryCategory = "retail"
	CategoryFoodDelivery  IndustryCategory = "food_delivery"
	CategoryManufacturing IndustryCategory = "manufacturing"
	CategoryThirdParty    IndustryCategory = "3pl"
)

func getValidCategories() map[IndustryCategory]struct{} {
	return map[IndustryCategory]struct{}{
		CategoryEcommerce:     {},
		CategoryRetail:        {},
		CategoryFoodDelivery:  {},
		CategoryManufacturing: {},
		CategoryThirdParty:    {},
	}
}

// Validate checks that the category is one of the five known verticals.
func (c IndustryCategory) Validate() error {
	if _, ok := getValidCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("industryCategory",
			fmt.Errorf("%q is not a valid industry category", string(c)))
	}
	return nil
}

func (c IndustryCategory) String() string {
	return string(c)
}

// DisplayName returns the human-readable name of the vertical.
func (c IndustryCategory) DisplayName() string {
	switch c {
	case CategoryEcommerce:
		return "E-commerce"
	case CategoryRetail:
		return "Retail Distribution"
	case CategoryFoodDelivery:
		return "Food Delivery"
	case CategoryManufacturing:
		return "Manufacturing"
	case CategoryThirdParty:
		return "3PL Services"
	default:
		return "General"
	}
}

// Type classifies an order within its vertical and selects the exact status workflow.
type Type string

const (
	// E-commerce orders.
	TypeEcommerceDirect       Type = "ecommerce_direct"
	TypeEcommerceMarketplace  Type = "ecommerce_marketplace"
	TypeEcommerceSubscription Type = "ecommerce_subscription"
	TypeEcommerceB2B          Type = "ecommerce_b2b"

	// Retail distribution orders.
	TypeRetailPurchaseOrder Type = "retail_po"
	TypeRetailTransfer      Type = "retail_transfer"
	TypeRetailRestock       Type = "retail_restock"
	TypeRetailReturn        Type = "retail_return"

	// Food delivery orders.
	TypeFoodDeliveryCustomer Type = "food_delivery_customer"
	TypeFoodDeliveryCatering Type = "food_delivery_catering"
	TypeFoodDeliveryGrocery  Type = "food_delivery_grocery"
	TypeFoodDeliveryPickup   Type = "food_delivery_pickup"

	// Manufacturing orders.
	TypeManufacturingProduction    Type = "manufacturing_production"
	TypeManufacturingRawMaterials  Type = "manufacturing_raw_materials"
	TypeManufacturingFinishedGoods Type = "manufacturing_finished_goods"
	TypeManufacturingTransfer      Type = "manufacturing_transfer"

	// Third-party logistics orders.
	TypeThirdPartyFulfillment Type = "3pl_fulfillment"
	TypeThirdPartyStorage     Type = "3pl_storage"
	TypeThirdPartyCrossDock   Type = "3pl_cross_dock"
	TypeThirdPartyReturns     Type = "3pl_returns"
)

// getTypeCategories is the static registry mapping each order type to its vertical.
func getTypeCategories() map[Type]IndustryCategory {
	return map[Type]IndustryCategory{
		TypeEcommerceDirect:       CategoryEcommerce,
		TypeEcommerceMarketplace:  CategoryEcommerce,
		TypeEcommerceSubscription: CategoryEcommerce,
		TypeEcommerceB2B:          CategoryEcommerce,

		TypeRetailPurchaseOrder: CategoryRetail,
		TypeRetailTransfer:      CategoryRetail,
		TypeRetailRestock:       CategoryRetail,
		TypeRetailReturn:        CategoryRetail,

		TypeFoodDeliveryCustomer: CategoryFoodDelivery,
		TypeFoodDeliveryCatering: CategoryFoodDelivery,
		TypeFoodDeliveryGrocery:  CategoryFoodDelivery,
		TypeFoodDeliveryPickup:   CategoryFoodDelivery,

		TypeManufacturingProduction:    CategoryManufacturing,
		TypeManufacturingRawMaterials:  CategoryManufacturing,
		TypeManufacturingFinishedGoods: CategoryManufacturing,
		TypeManufacturingTransfer:      CategoryManufacturing,

		TypeThirdPartyFulfillment: CategoryThirdParty,
		TypeThirdPartyStorage:     CategoryThirdParty,
		TypeThirdPartyCrossDock:   CategoryThirdParty,
		TypeThirdPartyReturns:     CategoryThirdParty,
	}
}

// CategoryFor resolves the vertical for an order type. Unmapped types default to
// e-commerce, mirroring how unclassified orders are handled throughout the system.
func CategoryFor(t Type) IndustryCategory {
	if category, ok := getTypeCategories()[t]; ok {
		return category
	}
	return CategoryEcommerce
}

// Validate checks that the type is part of the registry.
func (t Type) Validate() error {
	if _, ok := getTypeCategories()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

// DisplayName returns the human-readable name of the order type.
func (t Type) DisplayName() string {
	names := map[Type]string{
		TypeEcommerceDirect:            "Direct E-commerce",
		TypeEcommerceMarketplace:       "Marketplace Order",
		TypeEcommerceSubscription:      "Subscription Order",
		TypeRetailPurchaseOrder:        "Purchase Order",
		TypeRetailTransfer:             "Store Transfer",
		TypeRetailRestock:              "Restocking Order",
		TypeFoodDeliveryCustomer:       "Food Delivery",
		TypeFoodDeliveryCatering:       "Catering Order",
		TypeFoodDeliveryGrocery:        "Grocery Delivery",
		TypeManufacturingProduction:    "Production Order",
		TypeManufacturingRawMaterials:  "Raw Materials",
		TypeManufacturingFinishedGoods: "Finished Goods",
		TypeThirdPartyFulfillment:      "3PL Fulfillment",
		TypeThirdPartyStorage:          "3PL Storage",
		TypeThirdPartyCrossDock:        "Cross-Dock",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "Standard Order"
}

// Source records which platform or system an order originated from.
type Source string

const (
	// E-commerce platforms.
	SourceShopify           Source = "shopify"
	SourceWooCommerce       Source = "woocommerce"
	SourceMagento           Source = "magento"
	SourceBigCommerce       Source = "bigcommerce"
	SourceAmazonMarketplace Source = "amazon_marketplace"
	SourceEbay              Source = "ebay"
	SourceWalmart           Source = "walmart_marketplace"
	SourceEtsy              Source = "etsy"
	SourceCustomEcommerce   Source = "custom_ecommerce"

	// Retail distribution sources.
	SourceVendorPortal      Source = "vendor_portal"
	SourceEDISystem         Source = "edi_system"
	SourceRetailPOSystem    Source = "retail_po_system"
	SourceDistributorPortal Source = "distributor_portal"
	SourceSupplierPortal    Source = "supplier_portal"

	// Food delivery platforms.
	SourceUberEats      Source = "uber_eats"
	SourceDoorDash      Source = "doordash"
	SourceGrubhub       Source = "grubhub"
	SourceRestaurantPOS Source = "restaurant_pos"
	SourcePhoneOrder    Source = "phone_order"
	SourceMobileApp     Source = "mobile_app"

	// Manufacturing systems.
	SourceERPSystem          Source = "erp_system"
	SourceMESSystem          Source = "mes_system"
	SourceProductionSchedule Source = "production_schedule"
	SourceSAP                Source = "sap"

	// 3PL sources.
	SourceClientPortal   Source = "client_portal"
	SourceWMSIntegration Source = "wms_integration"
	SourceAPIIntegration Source = "api_integration"
	SourceManualEntry    Source = "manual_entry"

	// Generic channels.
	SourceWeb    Source = "web"
	SourceMobile Source = "mobile"
	SourceAPI    Source = "api"
)

func getValidSources() map[Source]struct{} {
	return map[Source]struct{}{
		SourceShopify: {}, SourceWooCommerce: {}, SourceMagento: {}, SourceBigCommerce: {},
		SourceAmazonMarketplace: {}, SourceEbay: {}, SourceWalmart: {}, SourceEtsy: {},
		SourceCustomEcommerce: {},
		SourceVendorPortal:    {}, SourceEDISystem: {}, SourceRetailPOSystem: {},
		SourceDistributorPortal: {}, SourceSupplierPortal: {},
		SourceUberEats: {}, SourceDoorDash: {}, SourceGrubhub: {}, SourceRestaurantPOS: {},
		SourcePhoneOrder: {}, SourceMobileApp: {},
		SourceERPSystem: {}, SourceMESSystem: {}, SourceProductionSchedule: {}, SourceSAP: {},
		SourceClientPortal: {}, SourceWMSIntegration: {}, SourceAPIIntegration: {},
		SourceManualEntry: {},
		SourceWeb:         {}, SourceMobile: {}, SourceAPI: {},
	}
}

// Validate checks that the source is a known channel.
func (s Source) Validate() error {
	if _, ok := getValidSources()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderSource",
			fmt.Errorf("%q is not a valid order source", string(s)))
	}
	return nil
}

func (s Source) String() string {
	return string(s)
}

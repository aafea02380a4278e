// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The vertical payload is stored as a jsonb document next to its category column,
// so reads can decode it back into the right payload type.
type OrderDTO struct {
	ID         string `gorm:"type:varchar(16);primaryKey"`
	CustomerID string `gorm:"type:varchar(64);index"`

	Status           string `gorm:"type:varchar(32);index"`
	Priority         string `gorm:"type:varchar(16)"`
	OrderType        string `gorm:"type:varchar(48)"`
	OrderSource      string `gorm:"type:varchar(48)"`
	IndustryCategory string `gorm:"type:varchar(32);index"`

	Items          []ItemDTO       `gorm:"serializer:json;type:jsonb"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2)"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)"`

	DeliveryAddress       map[string]string `gorm:"serializer:json;type:jsonb"`
	DeliveryInstructions  string            `gorm:"type:text"`
	RequestedDeliveryDate *time.Time
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time

	PaymentMethod    string `gorm:"type:varchar(32)"`
	PaymentStatus    string `gorm:"type:varchar(16)"`
	PaymentReference string `gorm:"type:varchar(128)"`

	WarehouseID    string `gorm:"type:varchar(64);index"`
	AssignedDriver string `gorm:"type:varchar(64)"`
	RouteID        string `gorm:"type:varchar(64)"`
	TrackingNumber string `gorm:"type:varchar(128)"`

	IndustryData []byte `gorm:"type:jsonb"`

	Notes string         `gorm:"type:text"`
	Tags  pq.StringArray `gorm:"type:text[]"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item inside the order's jsonb items document.
type ItemDTO struct {
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	BatchNumber string `json:"batch_number,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	snapshot := o.Snapshot()

	items := make([]ItemDTO, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, ItemDTO{
			SKU:         item.SKU(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			BatchNumber: item.BatchNumber(),
			Notes:       item.Notes(),
		})
	}

	var payload []byte
	if snapshot.IndustryData != nil {
		raw, err := json.Marshal(snapshot.IndustryData)
		if err != nil {
			return OrderDTO{}, err
		}
		payload = raw
	}

	return OrderDTO{
		ID:         snapshot.ID.String(),
		CustomerID: snapshot.CustomerID,

		Status:           string(snapshot.Status),
		Priority:         string(snapshot.Priority),
		OrderType:        string(snapshot.OrderType),
		OrderSource:      string(snapshot.OrderSource),
		IndustryCategory: string(snapshot.IndustryCategory),

		Items:          items,
		Subtotal:       o.Subtotal().Decimal(),
		TaxAmount:      snapshot.TaxAmount.Decimal(),
		ShippingCost:   snapshot.ShippingCost.Decimal(),
		DiscountAmount: snapshot.DiscountAmount.Decimal(),
		TotalAmount:    o.TotalAmount().Decimal(),

		DeliveryAddress:       snapshot.DeliveryAddress,
		DeliveryInstructions:  snapshot.DeliveryInstructions,
		RequestedDeliveryDate: snapshot.RequestedDeliveryDate,
		EstimatedDeliveryDate: snapshot.EstimatedDeliveryDate,
		ActualDeliveryDate:    snapshot.ActualDeliveryDate,

		PaymentMethod:    snapshot.PaymentMethod,
		PaymentStatus:    string(snapshot.PaymentStatus),
		PaymentReference: snapshot.PaymentReference,

		WarehouseID:    snapshot.WarehouseID,
		AssignedDriver: snapshot.AssignedDriver,
		RouteID:        snapshot.RouteID,
		TrackingNumber: snapshot.TrackingNumber,

		IndustryData: payload,

		Notes: snapshot.Notes,
		Tags:  pq.StringArray(snapshot.Tags),

		CreatedAt:   snapshot.CreatedAt,
		UpdatedAt:   snapshot.UpdatedAt,
		ShippedAt:   snapshot.ShippedAt,
		DeliveredAt: snapshot.DeliveredAt,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the vertical payload using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoneyFromString(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.SKU, itemDTO.ProductName, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		if itemDTO.BatchNumber != "" {
			item = item.WithBatchNumber(itemDTO.BatchNumber)
		}
		if itemDTO.Notes != "" {
			item = item.WithNotes(itemDTO.Notes)
		}
		items = append(items, item)
	}

	taxAmount, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}
	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	discountAmount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	industryData, err := decodeIndustryData(order.IndustryCategory(dto.IndustryCategory), dto.IndustryData)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		CustomerID: dto.CustomerID,

		Status:           order.Status(dto.Status),
		Priority:         order.Priority(dto.Priority),
		OrderType:        order.Type(dto.OrderType),
		OrderSource:      order.Source(dto.OrderSource),
		IndustryCategory: order.IndustryCategory(dto.IndustryCategory),

		Items:          items,
		TaxAmount:      taxAmount,
		ShippingCost:   shippingCost,
		DiscountAmount: discountAmount,

		DeliveryAddress:       dto.DeliveryAddress,
		DeliveryInstructions:  dto.DeliveryInstructions,
		RequestedDeliveryDate: dto.RequestedDeliveryDate,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		ActualDeliveryDate:    dto.ActualDeliveryDate,

		PaymentMethod:    dto.PaymentMethod,
		PaymentStatus:    order.PaymentStatus(dto.PaymentStatus),
		PaymentReference: dto.PaymentReference,

		WarehouseID:    dto.WarehouseID,
		AssignedDriver: dto.AssignedDriver,
		RouteID:        dto.RouteID,
		TrackingNumber: dto.TrackingNumber,

		IndustryData: industryData,

		Notes: dto.Notes,
		Tags:  dto.Tags,

		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		ShippedAt:   dto.ShippedAt,
		DeliveredAt: dto.DeliveredAt,
	}), nil
}

// decodeIndustryData unmarshals the stored payload into the payload type the
// category column names. An empty payload restores as nil.
func decodeIndustryData(category order.IndustryCategory, raw []byte) (order.IndustryData, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var data order.IndustryData
	switch category {
	case order.CategoryEcommerce:
		data = &order.EcommerceData{}
	case order.CategoryRetail:
		data = &order.RetailData{}
	case order.CategoryFoodDelivery:
		data = &order.FoodDeliveryData{}
	case order.CategoryManufacturing:
		data = &order.ManufacturingData{}
	case order.CategoryThirdParty:
		data = &order.ThirdPartyData{}
	default:
		return nil, fmt.Errorf("unknown industry category %q in stored order", category)
	}

	if err := json.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	return data, nil
}

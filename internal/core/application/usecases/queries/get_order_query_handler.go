package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order with the
// given id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			priority,
			order_type,
			order_source,
			industry_category,
			subtotal,
			total_amount,
			warehouse_id,
			assigned_driver,
			tracking_number,
			tags,
			estimated_delivery_date,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		resp              GetOrderQueryResponse
		tags              pq.StringArray
		estimatedDelivery sql.NullTime
		createdAt         time.Time
		updatedAt         time.Time
	)

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.Status,
		&resp.Priority,
		&resp.OrderType,
		&resp.OrderSource,
		&resp.IndustryCategory,
		&resp.SubtotalAmount,
		&resp.TotalAmount,
		&resp.WarehouseID,
		&resp.AssignedDriver,
		&resp.TrackingNumber,
		&tags,
		&estimatedDelivery,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Tags = tags
	if estimatedDelivery.Valid {
		resp.EstimatedDelivery = &estimatedDelivery.Time
	}
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	return resp, nil
}

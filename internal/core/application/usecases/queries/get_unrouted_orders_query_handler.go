package queries

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/order"
)

// GetUnroutedOrdersQueryHandler retrieves orders awaiting warehouse routing from
// the database. Terminal orders are excluded so cancelled orders never queue for
// routing.
type GetUnroutedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnroutedOrdersQueryHandler creates a handler for unrouted order queries.
// Requires a GORM database connection for query execution.
func NewGetUnroutedOrdersQueryHandler(db *gorm.DB) GetUnroutedOrdersQueryHandler {
	return GetUnroutedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unrouted orders, oldest first.
func (h GetUnroutedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnroutedOrdersQuery,
) ([]GetUnroutedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnroutedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_type,
			industry_category,
			status,
			priority,
			created_at
		FROM orders
		WHERE warehouse_id = ''
		  AND status NOT IN (?, ?, ?, ?, ?)
		ORDER BY created_at
	`,
		order.StatusDelivered,
		order.StatusCancelled,
		order.StatusReturned,
		order.StatusInventoried,
		order.StatusPickedUp,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnroutedOrdersQueryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.OrderType,
			&resp.IndustryCategory,
			&resp.Status,
			&resp.Priority,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler lists a courier's order history.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier history queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the courier's orders across all
// stages, newest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			COALESCE(u.name, ?) AS buyer_name,
			o.amount,
			o.payment_method,
			o.paid,
			o.placed_at,
			o.stage,
			o.status_label,
			o.courier_id
		FROM orders o
		LEFT JOIN users u ON u.id = o.buyer_id
		WHERE o.courier_id = ?
		ORDER BY o.placed_at DESC
	`, UnknownBuyerName, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderResponse(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

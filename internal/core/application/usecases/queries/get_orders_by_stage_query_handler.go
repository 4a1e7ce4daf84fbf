package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStageQueryHandler serves the stage views of the pipeline.
// Buyer names are resolved with a left join so orders outlive their buyer
// records.
type GetOrdersByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStageQueryHandler creates a handler for stage listing queries.
func NewGetOrdersByStageQueryHandler(db *gorm.DB) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in the requested stage.
// Returns order read models sorted by placement time, oldest first.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
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
		WHERE o.stage = ?
		ORDER BY o.placed_at
	`, UnknownBuyerName, int(query.Stage())).Rows()
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

// scanOrderResponse maps one joined orders row into the read model. Shared
// by the stage listing and courier history queries, whose row shapes match.
func scanOrderResponse(scan func(dest ...any) error) (OrderResponse, error) {
	var orderResp OrderResponse
	var id, buyerID uuid.UUID
	var courierID *uuid.UUID
	var stage int
	var placedAt time.Time

	err := scan(
		&id,
		&buyerID,
		&orderResp.BuyerName,
		&orderResp.Amount,
		&orderResp.PaymentMethod,
		&orderResp.Paid,
		&placedAt,
		&stage,
		&orderResp.StatusLabel,
		&courierID,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID

	buyer, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.BuyerID = buyer

	if courierID != nil {
		courier, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return OrderResponse{}, courierErr
		}
		orderResp.CourierID = &courier
	}

	orderResp.PlacedAt = placedAt
	orderResp.Stage = order.Stage(stage)

	return orderResp, nil
}

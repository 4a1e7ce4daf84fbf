package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the single-order detail view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its item lines.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
			o.courier_id,
			o.address_first_name,
			o.address_last_name,
			o.address_street,
			o.address_city,
			o.address_province,
			o.address_postal_code
		FROM orders o
		LEFT JOIN users u ON u.id = o.buyer_id
		WHERE o.id = ?
	`, UnknownBuyerName, query.OrderID().Bytes()).Row()

	var detail OrderDetailResponse
	var id, buyerID uuid.UUID
	var courierID *uuid.UUID
	var stage int
	var placedAt time.Time
	var firstName, lastName, street, city, province, postalCode string

	err := row.Scan(
		&id,
		&buyerID,
		&detail.BuyerName,
		&detail.Amount,
		&detail.PaymentMethod,
		&detail.Paid,
		&placedAt,
		&stage,
		&detail.StatusLabel,
		&courierID,
		&firstName,
		&lastName,
		&street,
		&city,
		&province,
		&postalCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return OrderDetailResponse{}, err
	}

	detail.ID = query.OrderID()

	buyer, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.BuyerID = buyer

	if courierID != nil {
		courier, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return OrderDetailResponse{}, courierErr
		}
		detail.CourierID = &courier
	}

	detail.PlacedAt = placedAt
	detail.Stage = order.Stage(stage)

	address, err := kernel.NewAddress(firstName, lastName, street, city, province, postalCode)
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.Address = address.String()

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.Items = items

	return detail, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_ref,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_ref
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.ProductRef, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

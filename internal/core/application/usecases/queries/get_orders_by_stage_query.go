package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
	"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
)

// UnknownBuyerName is reported when an order references a buyer that no
// longer exists in the users table.
const UnknownBuyerName = "Unknown User"

// GetOrdersByStageQuery retrieves a snapshot of the orders currently in one
// lifecycle stage. The four stage views of the fulfillment pipeline are all
// served by this single stage-filtered query.
//
// Example:
//
//	query, err := NewGetOrdersByStageQuery(order.Assigned)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStageQuery struct { //nolint:recvcheck //using for validation
	stage order.Stage

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery creates a query for the given lifecycle stage.
func NewGetOrdersByStageQuery(stage order.Stage) (GetOrdersByStageQuery, error) {
	if err := stage.Validate(); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return GetOrdersByStageQuery{
		stage: stage,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

// Stage returns the lifecycle stage being listed.
func (q GetOrdersByStageQuery) Stage() order.Stage {
	return q.stage
}

// OrderResponse represents one order in the stage listing read model.
// BuyerName is resolved from the users table at query time and falls back to
// UnknownBuyerName when the buyer record is gone.
type OrderResponse struct {
	ID            kernel.UUID
	BuyerID       kernel.UUID
	BuyerName     string
	Amount        float64
	PaymentMethod string
	Paid          bool
	PlacedAt      time.Time
	Stage         order.Stage
	StatusLabel   string
	CourierID     *kernel.UUID
}

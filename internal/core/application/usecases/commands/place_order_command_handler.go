package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler persists new orders entering the pipeline.
// Checkout itself (cart, pricing, payment capture) happens upstream; this
// handler is the boundary where a confirmed purchase becomes a Placed order.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for checkout persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order aggregate in the Placed stage and persists it
// within a transaction. Automatically rolls back on any error.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.Items(),
		cmd.Amount(),
		cmd.Address(),
		cmd.PaymentMethod(),
		cmd.Paid(),
		placedAtNow(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

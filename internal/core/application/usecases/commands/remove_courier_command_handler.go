package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// RemoveCourierCommandHandler performs the Assigned -> Shipped transition,
// releasing the courier. Reassignment to a different courier is modeled as
// remove followed by assign; there is no in-place swap.
type RemoveCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveCourierCommandHandler creates a handler for courier release.
func NewRemoveCourierCommandHandler(uowFactory OrderUoWFactory) RemoveCourierCommandHandler {
	return RemoveCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, releases the named courier and persists the
// result. Returns errs.ObjectNotFoundError when the order does not exist,
// order.ErrCourierMismatch when a different courier holds the order, and the
// state machine's validation error when the order is not in the Assigned
// stage.
func (h RemoveCourierCommandHandler) Handle(ctx context.Context, cmd RemoveCourierCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Unassign(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

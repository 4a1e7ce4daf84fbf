package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// MarkOrderDeliveredCommandHandler performs the Assigned -> Delivered
// transition. The stage change takes the order out of the active assignment
// relation, so the Update also releases the exclusivity slot held by the
// partial unique index.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDeliveredCommandHandler creates a handler for order completion.
func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the Delivered transition and persists the
// result. Returns errs.ObjectNotFoundError when the order does not exist and
// the state machine's validation error when the order is not in the Assigned
// stage.
func (h MarkOrderDeliveredCommandHandler) Handle(
	ctx context.Context, cmd MarkOrderDeliveredCommand,
) (*order.Order, error) {
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

	if err = aggregate.MarkDelivered(); err != nil {
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

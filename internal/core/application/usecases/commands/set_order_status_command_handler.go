package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// SetOrderStatusCommandHandler applies the legacy in-place status patch.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for the status patch.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its display status and, when requested
// and permitted, drops the courier reference. Returns
// errs.ObjectNotFoundError when the order does not exist and the aggregate's
// validation error when the courier clear is requested outside the Delivered
// stage.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.SetStatusLabel(cmd.StatusLabel()); err != nil {
		return nil, err
	}

	if cmd.ClearCourier() {
		if err = aggregate.ClearCourier(); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

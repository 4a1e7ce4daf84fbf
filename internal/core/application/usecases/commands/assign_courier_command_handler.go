package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// AssignCourierCommandHandler performs the Shipped -> Assigned transition,
// claiming the courier for the order. Courier exclusivity is checked twice:
// optimistically against the set of couriers that currently hold an assigned
// order, then definitively by the partial unique index on orders.courier_id,
// which the repository reports as services.ErrCourierBusy. Two concurrent
// assignments of the same courier therefore cannot both commit.
type AssignCourierCommandHandler struct {
	uowFactory        UoWFactory
	assignmentService *services.AssignmentService
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory:        uowFactory,
		assignmentService: services.NewAssignmentService(),
	}
}

// Handle loads the order and the courier, verifies the courier is free and
// persists the assignment. Returns errs.ObjectNotFoundError when either
// aggregate is missing, services.ErrCourierBusy when the courier already
// holds an active order, and the state machine's validation error when the
// order is not in the Shipped stage.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
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
	courierRepo := uow.CourierRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	courierAggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	busyCourierIDs, err := orderRepo.GetAssignedCourierIDs(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.assignmentService.Assign(aggregate, courierAggregate, busyCourierIDs); err != nil {
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

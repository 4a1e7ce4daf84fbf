package commands

import (
	"context"
)

// DeleteCourierCommandHandler removes a courier from the fleet.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for courier removal.
func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the courier. Returns errs.ObjectNotFoundError when the
// courier does not exist.
func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CourierRepository().Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

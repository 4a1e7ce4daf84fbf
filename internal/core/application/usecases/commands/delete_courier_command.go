package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand removes a courier from the fleet. Removal is not
// blocked by in-flight assignments; the assignment audit job reports orders
// left pointing at a missing courier.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCourierCommand creates a command to remove the courier.
func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	command := DeleteCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return DeleteCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the courier to remove.
func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DeleteCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

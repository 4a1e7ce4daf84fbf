package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveCourierCommandIsNotConstructed = errors.New(
	"RemoveCourierCommand must be created via NewRemoveCourierCommand constructor",
)

// RemoveCourierCommand releases a courier from an assigned order, returning
// the order to the Shipped stage and freeing the courier for other work.
// The courier identifier must match the one on the order; the command is not
// a blanket unassign.
type RemoveCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCourierCommand creates a command to release the courier from the order.
func NewRemoveCourierCommand(orderID, courierID kernel.UUID) (RemoveCourierCommand, error) {
	command := RemoveCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return RemoveCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCourierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCourierCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c RemoveCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier expected to hold the order.
func (c RemoveCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RemoveCourierCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RemoveCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand completes an assigned order. The courier
// reference is kept on the delivered order for audit; delivery implicitly
// frees the courier because availability is derived from the Assigned stage
// alone.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to complete the order.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	command := MarkOrderDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderDeliveredCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand patches an order's display status in place.
//
// This is the legacy update path kept for clients that edit the status text
// directly instead of driving the stage transitions. It never moves the
// order between stages; a request to drop the courier reference alongside
// the patch is honored only once the order is in the Delivered stage.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	statusLabel  string
	clearCourier bool

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to patch the order's status
// text. clearCourier requests dropping the courier reference together with
// the patch.
func NewSetOrderStatusCommand(orderID kernel.UUID, statusLabel string, clearCourier bool) (SetOrderStatusCommand, error) {
	command := SetOrderStatusCommand{
		clearCourier: clearCourier,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatusLabel(statusLabel),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to patch.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StatusLabel returns the new display status.
func (c SetOrderStatusCommand) StatusLabel() string {
	return c.statusLabel
}

// ClearCourier reports whether the courier reference should be dropped.
func (c SetOrderStatusCommand) ClearCourier() bool {
	return c.clearCourier
}

func (c *SetOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SetOrderStatusCommand) setStatusLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("statusLabel")
	}
	c.statusLabel = label
	return nil
}

package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a checkout request entering the fulfillment
// pipeline. The resulting order starts in the Placed stage with no courier.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Maria", "Santos", "12 Mango St", "Davao", "", "8000")
//	items := []order.Item{item}
//	cmd, err := NewPlaceOrderCommand(buyerID, items, 500, addr, "cod", false)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyerID       kernel.UUID
	items         []order.Item
	amount        float64
	address       kernel.Address
	paymentMethod string
	paid          bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command, generating a fresh order
// ID. All field validation mirrors the Order aggregate's construction rules
// so invalid checkouts are rejected before any write.
func NewPlaceOrderCommand(
	buyerID kernel.UUID,
	items []order.Item,
	amount float64,
	address kernel.Address,
	paymentMethod string,
	paid bool,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		paid:  paid,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setBuyerID(buyerID),
		command.setItems(items),
		command.setAmount(amount),
		command.setAddress(address),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the purchasing user's identifier.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Items returns the purchased product lines.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// Amount returns the order total.
func (c PlaceOrderCommand) Amount() float64 {
	return c.amount
}

// Address returns the shipping destination.
func (c PlaceOrderCommand) Address() kernel.Address {
	return c.address
}

// PaymentMethod returns how the buyer pays.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Paid reports whether payment was already received at checkout.
func (c PlaceOrderCommand) Paid() bool {
	return c.paid
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *PlaceOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}

// placedAtNow returns the checkout timestamp for new orders.
// Separated for clarity; orders are stamped when the handler runs.
func placedAtNow() time.Time {
	return time.Now().UTC()
}

package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCourierMismatch is returned when an operation names a courier that is
	// not the one currently assigned to the order.
	ErrCourierMismatch = errors.New("courier is not assigned to this order")
)

// Order represents a purchase order moving through fulfillment. It is the
// aggregate root owning the lifecycle state machine: the order's identity is
// stable from placement to delivery while its Stage records the current
// hand-off position.
//
// Invariants:
//   - Identity, buyer, items, amount, address and payment data are immutable
//     after construction
//   - Amount is positive and at least one item is present
//   - Stage transitions follow the Stage state machine
//   - A courier reference exists exactly while the stage requires one
//     (see Stage.ValidateCanHaveCourier)
//
// The struct uses private fields so every mutation goes through a validated
// method.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID references the purchasing user
	buyerID kernel.UUID

	// items are the purchased product lines, never empty
	items []Item

	// amount is the order total, always positive
	amount float64

	// address is the structured shipping destination
	address kernel.Address

	// paymentMethod records how the buyer pays
	paymentMethod string

	// paid reports whether payment has been received
	paid bool

	// placedAt is the checkout timestamp
	placedAt time.Time

	// stage is the authoritative lifecycle position
	stage Stage

	// statusLabel is the human-readable mirror of the stage
	statusLabel string

	// courierID is the claiming courier (nil outside Assigned/Delivered)
	courierID *kernel.UUID

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates an order in the Placed stage, as produced by checkout.
//
// All parameters are validated; errors are joined so a caller sees every
// problem at once. The new order carries the "Order Placed" status label and
// no courier.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	amount float64,
	address kernel.Address,
	paymentMethod string,
	paid bool,
	placedAt time.Time,
) (*Order, error) {
	order := &Order{
		stage:         Placed,
		statusLabel:   StatusLabelPlaced,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setItems(items),
		order.setAmount(amount),
		order.setAddress(address),
		order.setPaymentMethod(paymentMethod),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	order.paid = paid
	return order, nil
}

// RestoreOrder reconstructs an order from persistence in an arbitrary
// lifecycle position. Unlike NewOrder it accepts the persisted stage, status
// label and courier reference, and re-checks the stage/courier consistency
// rule so corrupt rows cannot re-enter the domain.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	amount float64,
	address kernel.Address,
	paymentMethod string,
	paid bool,
	placedAt time.Time,
	stage Stage,
	statusLabel string,
	courierID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setItems(items),
		order.setAmount(amount),
		order.setAddress(address),
		order.setPaymentMethod(paymentMethod),
		order.setPlacedAt(placedAt),
		order.setStage(stage),
	); err != nil {
		return nil, err
	}

	if err := stage.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	order.paid = paid
	order.statusLabel = statusLabel
	order.courierID = courierID
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it before persisting restored aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Items returns the purchased product lines.
func (o *Order) Items() []Item {
	return o.items
}

// Amount returns the order total.
func (o *Order) Amount() float64 {
	return o.amount
}

// Address returns the shipping destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// PaymentMethod returns how the buyer pays.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Paid reports whether payment has been received.
func (o *Order) Paid() bool {
	return o.paid
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Stage returns the current lifecycle stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// StatusLabel returns the human-readable status mirroring the stage.
func (o *Order) StatusLabel() string {
	return o.statusLabel
}

// Courier returns the assigned courier's ID, or nil when no courier holds
// the order.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Ship hands the order to logistics.
//
// Valid only from the Placed stage. On success the stage becomes Shipped and
// the status label reads "Shipped".
func (o *Order) Ship() error {
	newStage, err := o.stage.Ship()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.statusLabel = StatusLabelShipped
	return nil
}

// Assign claims the order for the named courier.
//
// Valid only from the Shipped stage. On success the stage becomes Assigned,
// the courier reference is set, and the status label reads
// "Pick Up by Courier <name>". Whether the courier is free to take the order
// is not this aggregate's concern; exclusivity across orders is enforced by
// the assignment service and the store's uniqueness constraint.
func (o *Order) Assign(courierID kernel.UUID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	newStage, err := o.stage.Assign()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.courierID = &courierID
	o.statusLabel = PickupStatusLabel(courierName)
	return nil
}

// Unassign releases the order's courier and returns the order to logistics.
//
// The caller must name the courier currently holding the order; a mismatch
// returns ErrCourierMismatch without modifying the order. On success the
// stage becomes Shipped again, the courier reference is cleared, and the
// status label reads "Awaiting Courier Assignment".
func (o *Order) Unassign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return fmt.Errorf("%w: %s", ErrCourierMismatch, courierID)
	}

	newStage, err := o.stage.Unassign()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.courierID = nil
	o.statusLabel = StatusLabelAwaitingCourier
	return nil
}

// MarkDelivered completes the order.
//
// Valid only from the Assigned stage. The courier reference is preserved on
// the delivered record; the courier still becomes free because only Assigned
// orders count toward the busy set.
func (o *Order) MarkDelivered() error {
	newStage, err := o.stage.Deliver()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.statusLabel = StatusLabelDelivered
	return nil
}

// SetStatusLabel patches the human-readable status in place without moving
// the order between stages. The label must be non-empty. Idempotent.
func (o *Order) SetStatusLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("status")
	}

	o.statusLabel = label
	return nil
}

// ClearCourier drops the courier reference from a delivered order.
// Supports the legacy delivered-in-place flow that blanks the reference when
// completing; valid only in the Delivered stage, where the reference is
// optional.
func (o *Order) ClearCourier() error {
	if o.stage != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to clear the courier reference", o.stage.String()),
		)
	}

	o.courierID = nil
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the purchasing user reference.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerId is invalid", err)
	}
	o.buyerID = buyerID
	return nil
}

// setItems validates and sets the purchased product lines.
// At least one valid item is required.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// setAmount validates and sets the order total. Must be positive.
func (o *Order) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%v is not greater than 0", amount))
	}
	o.amount = amount
	return nil
}

// setAddress validates and sets the shipping destination.
func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setPlacedAt validates and sets the checkout timestamp.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setStage validates and sets a persisted lifecycle stage during restore.
func (o *Order) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	o.stage = stage
	return nil
}

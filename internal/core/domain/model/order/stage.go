package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Stage represents the position of an order in the fulfillment lifecycle.
// It implements a finite state machine so an order can only move along the
// hand-off path the business defines.
//
// Transitions:
//
//	Placed ──> Shipped ──> Assigned ──> Delivered
//	              ^            │
//	              └────────────┘
//	         (courier unassigned)
//
// Stage replaces stage-per-collection bookkeeping: the stage is a column on
// the single order record, which makes a "lost" or duplicated order between
// hand-offs structurally impossible.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Placed is the initial stage after checkout. The order waits to be
	// handed to logistics.
	Placed

	// Shipped indicates the order entered logistics and awaits a courier.
	Shipped

	// Assigned indicates a courier has claimed the order for delivery.
	// While an order is in this stage its courier counts as busy.
	Assigned

	// Delivered is the terminal stage. No further transitions are allowed.
	Delivered
)

// Human-readable status labels mirroring each stage. The label travels with
// the order record for display; the Stage value stays authoritative.
const (
	StatusLabelPlaced          = "Order Placed"
	StatusLabelShipped         = "Shipped"
	StatusLabelAwaitingCourier = "Awaiting Courier Assignment"
	StatusLabelDelivered       = "Delivered"
)

// PickupStatusLabel builds the display label for an order claimed by the
// named courier.
func PickupStatusLabel(courierName string) string {
	return fmt.Sprintf("Pick Up by Courier %s", courierName)
}

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Shipped:   "Shipped",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Placed:    "Placed",
		Shipped:   "Shipped",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// StageFromString parses a stage name, case-insensitively.
// Used when callers select a lifecycle stage by name, e.g. list endpoints.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getValidStageStrings() {
		if strings.EqualFold(name, s) {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a known stage", s),
	)
}

// Validate checks the Stage holds one of the defined lifecycle values.
// Unknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the stage name, or "Unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier validates the consistency between stage and courier
// reference.
//
// Rules:
//   - Placed and Shipped orders must not reference a courier
//   - Assigned orders must reference a courier
//   - Delivered orders may keep their courier reference or have it cleared
func (s Stage) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to have a courier", s.String()),
		)
	}

	if !courier && s == Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to have no courier", s.String()),
		)
	}

	return nil
}

// Ship transitions the stage to Shipped.
//
// Valid transitions:
//   - Placed -> Shipped (hand-off to logistics)
func (s Stage) Ship() (Stage, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Assign transitions the stage to Assigned.
//
// Valid transitions:
//   - Shipped -> Assigned (courier claims the order)
//
// Reassignment goes through Unassign first, returning the order to Shipped,
// so a courier swap is always two explicit transitions.
func (s Stage) Assign() (Stage, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to assign a courier", s.String()),
		)
	}

	return Assigned, nil
}

// Unassign transitions the stage back to Shipped.
//
// Valid transitions:
//   - Assigned -> Shipped (courier released, order awaits a new courier)
func (s Stage) Unassign() (Stage, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to unassign a courier", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the stage to Delivered.
//
// Valid transitions:
//   - Assigned -> Delivered (courier completed the hand-off)
//
// Delivered is a final stage with no further transitions.
func (s Stage) Deliver() (Stage, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to deliver", s.String()),
		)
	}

	return Delivered, nil
}

package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrCourierBusy is returned when the requested courier already holds an
// in-flight order. The caller should re-select a courier; this is the
// conflict case surfaced to collaborators as a 409.
var ErrCourierBusy = errors.New("courier is already assigned to an active order")

// AssignmentService is a domain service enforcing courier exclusivity:
// a courier backs at most one order in the Assigned stage at any time.
//
// The service evaluates the rule against a busy set derived from the live
// assignment relation, never against a stored availability flag. The check
// here is advisory under concurrency; the persistence layer's uniqueness
// constraint on active assignments is what closes the race between two
// simultaneous claims of the same courier (see the orders store's partial
// unique index).
//
// Example usage:
//
//	svc := services.NewAssignmentService()
//	err := svc.Assign(o, c, busyCourierIDs)
//	if errors.Is(err, services.ErrCourierBusy) {
//	    // courier already claimed, pick another
//	}
type AssignmentService struct{}

// NewAssignmentService creates the courier assignment domain service.
func NewAssignmentService() *AssignmentService {
	return &AssignmentService{}
}

// Assign claims the order for the courier if the courier is free.
//
// busyCourierIDs is the authoritative busy set: the courier IDs referenced by
// orders currently in the Assigned stage. Both aggregates are validated
// before any state changes; on success the order enters the Assigned stage
// carrying the courier's ID and pickup status label.
func (s *AssignmentService) Assign(o *order.Order, c *courier.Courier, busyCourierIDs []kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	for _, busyID := range busyCourierIDs {
		if busyID.IsEqual(c.ID()) {
			return fmt.Errorf("%w: %s", ErrCourierBusy, c.ID())
		}
	}

	return o.Assign(c.ID(), c.Name())
}

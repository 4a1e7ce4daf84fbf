// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAvailable retrieves couriers not referenced by any order in the
	// Assigned stage. Availability is computed from the live assignment
	// relation at call time, never from a stored flag.
	//
	// Business rules:
	//   - Couriers without orders: available
	//   - Couriers referenced only by Delivered orders: available again
	//   - Couriers referenced by an Assigned order: busy
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// Delete removes the courier with the given identifier.
	// Returns errs.ObjectNotFoundError when no such courier exists.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// One record per order; the lifecycle stage is a column on the record, so the
// four stage views of the original hand-off model are stage-filtered reads.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including stage
	// transitions. When the update would give a courier a second order in the
	// Assigned stage, the store's uniqueness constraint rejects it and Update
	// returns services.ErrCourierBusy.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStage retrieves a snapshot of all orders currently in the given
	// lifecycle stage, in natural store order.
	GetAllInStage(ctx context.Context, stage order.Stage) ([]*order.Order, error)

	// GetAllByCourier retrieves all orders referencing the given courier,
	// regardless of stage.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// GetAssignedCourierIDs returns the authoritative busy set: the courier
	// IDs referenced by orders currently in the Assigned stage.
	GetAssignedCourierIDs(ctx context.Context) ([]kernel.UUID, error)
}

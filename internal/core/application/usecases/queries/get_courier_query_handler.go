package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierQueryHandler serves the single-courier detail view.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier detail queries.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query to retrieve one courier.
// Returns errs.ObjectNotFoundError when the courier does not exist.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			plate_number,
			license_number
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Bytes()).Row()

	var courier CourierResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&courier.Name,
		&courier.Address,
		&courier.PlateNumber,
		&courier.LicenseNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CourierResponse{}, errs.NewObjectNotFoundError("courierID", query.CourierID().String())
		}
		return CourierResponse{}, err
	}

	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CourierResponse{}, err
	}
	courier.ID = courierID

	return courier, nil
}

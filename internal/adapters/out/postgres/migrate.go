package postgres

import (
	"fmt"

	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date and installs the structural
// constraints the domain relies on.
//
// Beyond the table definitions, a partial unique index on
// orders(courier_id) WHERE stage = Assigned enforces courier exclusivity in
// the store itself: two concurrent claims of the same courier both pass the
// application-level busy check, but only one survives the index. The loser's
// update fails with a unique-key violation, which the order repository maps
// to services.ErrCourierBusy.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
		&userrepo.UserDTO{},
	); err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}

	stmt := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_orders_active_courier
		 ON orders (courier_id)
		 WHERE stage = %d AND courier_id IS NOT NULL`,
		int(order.Assigned),
	)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create active-courier unique index: %w", err)
	}

	return nil
}

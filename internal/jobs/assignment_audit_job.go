package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// AssignmentAuditJob periodically verifies the courier exclusivity invariant
// against the live data. The partial unique index makes double assignment
// structurally impossible, so a hit here means the schema was tampered with
// or migrated incorrectly; the job also reports assigned orders whose
// courier record was deleted, which is permitted and expected to surface in
// operations dashboards rather than block courier removal.
type AssignmentAuditJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewAssignmentAuditJob creates the audit job. It runs every 30 seconds.
func NewAssignmentAuditJob(db *gorm.DB, logger *slog.Logger) *AssignmentAuditJob {
	return &AssignmentAuditJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "assignment_audit_job"),
	}
}

// Start begins the periodic audit.
func (j *AssignmentAuditJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.auditDoubleAssignments(ctx)
		j.auditOrphanedAssignments(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment audit job started (running every 30 seconds)")
	return nil
}

// Stop stops the audit job.
func (j *AssignmentAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment audit job stopped")
}

func (j *AssignmentAuditJob) auditDoubleAssignments(ctx context.Context) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT courier_id, COUNT(*) AS active
		FROM orders
		WHERE stage = ? AND courier_id IS NOT NULL
		GROUP BY courier_id
		HAVING COUNT(*) > 1
	`, int(order.Assigned)).Rows()
	if err != nil {
		j.logger.ErrorContext(ctx, "Double assignment audit failed", "error", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var courierID string
		var active int
		if err = rows.Scan(&courierID, &active); err != nil {
			j.logger.ErrorContext(ctx, "Double assignment audit scan failed", "error", err)
			return
		}
		j.logger.WarnContext(ctx, "Courier holds more than one active order",
			"courier_id", courierID, "active_orders", active)
	}

	if err = rows.Err(); err != nil {
		j.logger.ErrorContext(ctx, "Double assignment audit failed", "error", err)
	}
}

func (j *AssignmentAuditJob) auditOrphanedAssignments(ctx context.Context) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT o.id, o.courier_id
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.stage = ? AND o.courier_id IS NOT NULL AND c.id IS NULL
	`, int(order.Assigned)).Rows()
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphaned assignment audit failed", "error", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, courierID string
		if err = rows.Scan(&orderID, &courierID); err != nil {
			j.logger.ErrorContext(ctx, "Orphaned assignment audit scan failed", "error", err)
			return
		}
		j.logger.WarnContext(ctx, "Assigned order references deleted courier",
			"order_id", orderID, "courier_id", courierID)
	}

	if err = rows.Err(); err != nil {
		j.logger.ErrorContext(ctx, "Orphaned assignment audit failed", "error", err)
	}
}

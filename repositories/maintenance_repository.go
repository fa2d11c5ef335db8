package repositories

import (
	"context"

	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db}
}

// MaintenanceReport lists maintenance logs with machine, factory and
// technician context, newest first.
func (r *MaintenanceRepository) MaintenanceReport(ctx context.Context, f types.MaintenanceFilter) ([]utils.Row, error) {
	sql := `
		SELECT ml.id, ml.maintenance_date, ml.maintenance_type,
		       ml.downtime_hours, ml.cost, ml.description, ml.resolved,
		       m.name AS machine, m.status AS machine_status,
		       f.name AS factory, e.name AS technician
		FROM maintenance_logs ml
		JOIN machines m ON m.id = ml.machine_id
		JOIN production_lines pl ON pl.id = m.production_line_id
		JOIN factories f ON f.id = pl.factory_id
		JOIN employees e ON e.id = ml.technician_id
		WHERE 1=1`
	var args []any

	if f.MachineID != nil {
		sql += " AND ml.machine_id = ?"
		args = append(args, *f.MachineID)
	}
	if f.MaintenanceType != nil {
		sql += " AND ml.maintenance_type = ?"
		args = append(args, *f.MaintenanceType)
	}
	sql += " ORDER BY ml.maintenance_date DESC LIMIT ?"
	args = append(args, f.LimitOrDefault())

	return Query(ctx, r.db, sql, args...)
}

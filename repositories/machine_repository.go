package repositories

import (
	"context"

	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type MachineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db}
}

// GetMachines lists machines with their production line and factory, worst
// downtime first.
func (r *MachineRepository) GetMachines(ctx context.Context, f types.MachineFilter) ([]utils.Row, error) {
	sql := `
		SELECT m.id, m.name, m.model, m.manufacturer, m.status,
		       m.age_years, m.cumulative_downtime_hours,
		       m.last_maintenance_date,
		       pl.name AS production_line, f.name AS factory
		FROM machines m
		JOIN production_lines pl ON pl.id = m.production_line_id
		JOIN factories f ON f.id = pl.factory_id
		WHERE 1=1`
	var args []any

	if f.Status != nil {
		sql += " AND m.status = ?"
		args = append(args, *f.Status)
	}
	if f.FactoryID != nil {
		sql += " AND f.id = ?"
		args = append(args, *f.FactoryID)
	}
	sql += " ORDER BY m.cumulative_downtime_hours DESC"

	return Query(ctx, r.db, sql, args...)
}

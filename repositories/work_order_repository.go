package repositories

import (
	"context"

	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db}
}

// GetWorkOrders lists work orders with operator, production line, factory
// and completion rate, newest first. The completion percentage is NULL when
// a work order has no target quantity.
func (r *WorkOrderRepository) GetWorkOrders(ctx context.Context, f types.WorkOrderFilter) ([]utils.Row, error) {
	sql := `
		SELECT wo.id, wo.product_name, wo.status, wo.priority,
		       wo.quantity_target, wo.quantity_produced,
		       CASE WHEN wo.quantity_target > 0
		            THEN ROUND(100.0 * wo.quantity_produced / wo.quantity_target, 1)
		       END AS completion_pct,
		       wo.start_date, wo.end_date,
		       e.name AS operator, pl.name AS production_line, f.name AS factory
		FROM work_orders wo
		JOIN employees e ON e.id = wo.operator_id
		JOIN production_lines pl ON pl.id = wo.production_line_id
		JOIN factories f ON f.id = pl.factory_id
		WHERE 1=1`
	var args []any

	if f.Status != nil {
		sql += " AND wo.status = ?"
		args = append(args, *f.Status)
	}
	if f.Priority != nil {
		sql += " AND wo.priority = ?"
		args = append(args, *f.Priority)
	}
	if f.FactoryID != nil {
		sql += " AND f.id = ?"
		args = append(args, *f.FactoryID)
	}
	sql += " ORDER BY wo.start_date DESC LIMIT ?"
	args = append(args, f.LimitOrDefault())

	return Query(ctx, r.db, sql, args...)
}

// OperatorPerformance ranks active operators with at least one work order by
// completion rate, then by total defects.
func (r *WorkOrderRepository) OperatorPerformance(ctx context.Context) ([]utils.Row, error) {
	sql := `
		SELECT e.name AS operator, e.shift, f.name AS factory,
		       COUNT(DISTINCT wo.id) AS total_work_orders,
		       SUM(CASE WHEN wo.status = 'completed' THEN 1 ELSE 0 END) AS completed,
		       ROUND(100.0 * SUM(CASE WHEN wo.status = 'completed' THEN 1 ELSE 0 END) / COUNT(wo.id), 1) AS completion_rate_pct,
		       COALESCE(SUM(qi.defect_count), 0) AS total_defects,
		       SUM(CASE WHEN qi.result = 'fail' THEN 1 ELSE 0 END) AS failed_inspections
		FROM employees e
		JOIN factories f ON f.id = e.factory_id
		LEFT JOIN work_orders wo ON wo.operator_id = e.id
		LEFT JOIN quality_inspections qi ON qi.work_order_id = wo.id
		WHERE e.active = ?
		GROUP BY e.id
		HAVING COUNT(DISTINCT wo.id) > 0
		ORDER BY completion_rate_pct DESC, total_defects ASC`

	return Query(ctx, r.db, sql, true)
}

package repositories

import (
	"context"

	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type QualityRepository struct {
	db *gorm.DB
}

func NewQualityRepository(db *gorm.DB) *QualityRepository {
	return &QualityRepository{db}
}

// QualitySummary groups inspections per factory, result and defect type,
// worst defect totals first.
func (r *QualityRepository) QualitySummary(ctx context.Context, f types.InspectionFilter) ([]utils.Row, error) {
	sql := `
		SELECT f.name AS factory, qi.result,
		       COUNT(*) AS count,
		       SUM(qi.defect_count) AS total_defects,
		       qi.defect_type
		FROM quality_inspections qi
		JOIN work_orders wo ON wo.id = qi.work_order_id
		JOIN production_lines pl ON pl.id = wo.production_line_id
		JOIN factories f ON f.id = pl.factory_id
		WHERE 1=1`
	var args []any

	if f.Result != nil {
		sql += " AND qi.result = ?"
		args = append(args, *f.Result)
	}
	if f.FactoryID != nil {
		sql += " AND f.id = ?"
		args = append(args, *f.FactoryID)
	}
	sql += " GROUP BY f.name, qi.result, qi.defect_type ORDER BY total_defects DESC LIMIT ?"
	args = append(args, f.LimitOrDefault())

	return Query(ctx, r.db, sql, args...)
}

package repositories

import (
	"context"
	"fmt"

	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db}
}

// SupplierPerformance aggregates purchase orders per supplier: counts by
// status and the average delivery delay over delivered orders.
func (r *SupplierRepository) SupplierPerformance(ctx context.Context) ([]utils.Row, error) {
	delay := dateDiffDays(r.db, "po.actual_delivery", "po.expected_delivery")
	sql := fmt.Sprintf(`
		SELECT s.name AS supplier, s.country, s.reliability_score, s.lead_time_days,
		       COUNT(po.id) AS total_orders,
		       SUM(CASE WHEN po.status = 'delivered' THEN 1 ELSE 0 END) AS delivered,
		       SUM(CASE WHEN po.status = 'pending'   THEN 1 ELSE 0 END) AS pending,
		       SUM(CASE WHEN po.status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled,
		       ROUND(AVG(
		         CASE WHEN po.actual_delivery IS NOT NULL AND po.expected_delivery IS NOT NULL
		         THEN %s
		         ELSE NULL END
		       ), 1) AS avg_delay_days
		FROM suppliers s
		LEFT JOIN purchase_orders po ON po.supplier_id = s.id
		GROUP BY s.id
		ORDER BY s.reliability_score DESC`, delay)

	return Query(ctx, r.db, sql)
}

package repositories

import (
	"context"

	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

// InventoryStatus reports stock levels per part with its supplier and any
// open purchase orders. Parts below their reorder threshold are flagged
// LOW STOCK and listed before the healthy ones.
func (r *InventoryRepository) InventoryStatus(ctx context.Context) ([]utils.Row, error) {
	sql := `
		SELECT p.id, p.name, p.sku, p.category, p.stock_quantity,
		       p.reorder_threshold,
		       CASE WHEN p.stock_quantity < p.reorder_threshold THEN 'LOW STOCK' ELSE 'OK' END AS stock_status,
		       p.unit_cost,
		       s.name AS supplier, s.lead_time_days, s.reliability_score,
		       COUNT(po.id) AS open_purchase_orders
		FROM parts p
		JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN purchase_orders po ON po.part_id = p.id AND po.status IN ('pending','shipped')
		GROUP BY p.id
		ORDER BY stock_status DESC, p.stock_quantity ASC`

	return Query(ctx, r.db, sql)
}

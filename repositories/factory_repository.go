package repositories

import (
	"context"

	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

type FactoryRepository struct {
	db *gorm.DB
}

func NewFactoryRepository(db *gorm.DB) *FactoryRepository {
	return &FactoryRepository{db}
}

// ListFactories returns active factories with their production line and
// machine counts, ordered by name.
func (r *FactoryRepository) ListFactories(ctx context.Context, f types.FactoryFilter) ([]utils.Row, error) {
	sql := `
		SELECT f.id, f.name, f.location, f.country, f.established_year, f.total_area_sqm,
		       COUNT(DISTINCT pl.id) AS production_lines,
		       COUNT(DISTINCT m.id)  AS machines
		FROM factories f
		LEFT JOIN production_lines pl ON pl.factory_id = f.id
		LEFT JOIN machines m ON m.production_line_id = pl.id
		WHERE f.active = ?`
	args := []any{true}

	if f.FactoryID != nil {
		sql += " AND f.id = ?"
		args = append(args, *f.FactoryID)
	}
	sql += " GROUP BY f.id ORDER BY f.name"

	return Query(ctx, r.db, sql, args...)
}

package repositories

import (
	"context"
	"time"

	"manufacturing-mcp/utils"

	"gorm.io/gorm"
)

// Query executes a statement with bound parameters and materializes every
// row before the cursor is released. The connection is returned to the pool
// on every exit path.
func Query(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]utils.Row, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []utils.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			switch t := v.(type) {
			case []byte:
				values[i] = string(t)
			case time.Time:
				values[i] = t.Format("2006-01-02 15:04:05")
			}
		}
		out = append(out, utils.NewRow(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

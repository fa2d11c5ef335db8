package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// dateDiffDays builds the engine-specific expression for the number of days
// between two date columns (a - b).
func dateDiffDays(db *gorm.DB, a, b string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("(%s::date - %s::date)", a, b)
	case "mysql":
		return fmt.Sprintf("DATEDIFF(%s, %s)", a, b)
	case "sqlserver":
		return fmt.Sprintf("DATEDIFF(day, %s, %s)", b, a)
	default:
		return fmt.Sprintf("julianday(%s) - julianday(%s)", a, b)
	}
}

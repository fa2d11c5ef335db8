// migration/migrate.go
package migration

import (
	"manufacturing-mcp/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Factory{},
		&models.ProductionLine{},
		&models.Machine{},
		&models.Employee{},
		&models.Supplier{},
		&models.Part{},
		&models.PurchaseOrder{},
		&models.WorkOrder{},
		&models.WorkOrderPart{},
		&models.QualityInspection{},
		&models.MaintenanceLog{},
	)
}

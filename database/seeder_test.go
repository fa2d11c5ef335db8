package database

import (
	"path/filepath"
	"testing"

	"manufacturing-mcp/migration"
	"manufacturing-mcp/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDB(t)
	if err := RunSeeders(db); err != nil {
		t.Fatalf("RunSeeders() error = %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func TestRunSeedersCounts(t *testing.T) {
	db := seedTestDB(t)

	tests := []struct {
		name  string
		model any
		want  int64
	}{
		{"factories", &models.Factory{}, 5},
		{"production lines", &models.ProductionLine{}, 10},
		{"machines", &models.Machine{}, 16},
		{"employees", &models.Employee{}, 25},
		{"suppliers", &models.Supplier{}, 8},
		{"parts", &models.Part{}, 12},
		{"purchase orders", &models.PurchaseOrder{}, 60},
		{"work orders", &models.WorkOrder{}, 200},
		{"quality inspections", &models.QualityInspection{}, 500},
		{"maintenance logs", &models.MaintenanceLog{}, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := count(t, db, tt.model); got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
		})
	}

	// Every work order consumes between one and three parts.
	wops := count(t, db, &models.WorkOrderPart{})
	if wops < 200 || wops > 600 {
		t.Errorf("work order parts = %d, want between 200 and 600", wops)
	}
}

func TestRunSeedersIdempotent(t *testing.T) {
	db := seedTestDB(t)

	var before []int64
	tables := []any{
		&models.Factory{}, &models.ProductionLine{}, &models.Machine{},
		&models.Employee{}, &models.Supplier{}, &models.Part{},
		&models.PurchaseOrder{}, &models.WorkOrder{}, &models.WorkOrderPart{},
		&models.QualityInspection{}, &models.MaintenanceLog{},
	}
	for _, m := range tables {
		before = append(before, count(t, db, m))
	}

	if err := RunSeeders(db); err != nil {
		t.Fatalf("second RunSeeders() error = %v", err)
	}

	for i, m := range tables {
		if got := count(t, db, m); got != before[i] {
			t.Errorf("%T count after reseed = %d, want %d", m, got, before[i])
		}
	}
}

func TestMachineStatuses(t *testing.T) {
	db := seedTestDB(t)

	var maintenance, offline []models.Machine
	if err := db.Where("status = ?", "maintenance").Find(&maintenance).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Where("status = ?", "offline").Find(&offline).Error; err != nil {
		t.Fatal(err)
	}

	if len(maintenance) != 1 || maintenance[0].ID != 6 {
		t.Errorf("maintenance machines = %+v, want exactly machine 6", maintenance)
	}
	if len(offline) != 1 || offline[0].ID != 11 {
		t.Errorf("offline machines = %+v, want exactly machine 11", offline)
	}
}

func TestWorkOrderQuantityRules(t *testing.T) {
	db := seedTestDB(t)

	var orders []models.WorkOrder
	if err := db.Find(&orders).Error; err != nil {
		t.Fatal(err)
	}

	for _, wo := range orders {
		switch wo.Status {
		case "completed":
			if wo.QuantityProduced != wo.QuantityTarget {
				t.Errorf("work order %d completed with produced %d != target %d", wo.ID, wo.QuantityProduced, wo.QuantityTarget)
			}
			if wo.EndDate == nil {
				t.Errorf("work order %d completed without end date", wo.ID)
			}
		case "in_progress":
			if wo.QuantityProduced < 0 || wo.QuantityProduced > wo.QuantityTarget {
				t.Errorf("work order %d in progress with produced %d outside [0,%d]", wo.ID, wo.QuantityProduced, wo.QuantityTarget)
			}
			if wo.EndDate != nil {
				t.Errorf("work order %d in progress with end date set", wo.ID)
			}
		default:
			if wo.QuantityProduced != 0 {
				t.Errorf("work order %d %s with produced %d, want 0", wo.ID, wo.Status, wo.QuantityProduced)
			}
			if wo.EndDate != nil {
				t.Errorf("work order %d %s with end date set", wo.ID, wo.Status)
			}
		}
	}
}

func TestPurchaseOrderDeliveryRules(t *testing.T) {
	db := seedTestDB(t)

	var orders []models.PurchaseOrder
	if err := db.Find(&orders).Error; err != nil {
		t.Fatal(err)
	}

	for _, po := range orders {
		if po.Status == "delivered" && po.ActualDelivery == nil {
			t.Errorf("purchase order %d delivered without actual_delivery", po.ID)
		}
		if po.Status != "delivered" && po.ActualDelivery != nil {
			t.Errorf("purchase order %d %s with actual_delivery set", po.ID, po.Status)
		}
	}
}

func TestInspectionDefectRules(t *testing.T) {
	db := seedTestDB(t)

	var inspections []models.QualityInspection
	if err := db.Find(&inspections).Error; err != nil {
		t.Fatal(err)
	}

	for _, qi := range inspections {
		if qi.Result == "pass" {
			if qi.DefectType != nil || qi.DefectCount != 0 {
				t.Errorf("inspection %d passed but has defect fields set", qi.ID)
			}
			continue
		}
		if qi.DefectType != nil && qi.DefectCount == 0 {
			t.Errorf("inspection %d has defect type without a count", qi.ID)
		}
	}
}

func TestMaintenanceLogRules(t *testing.T) {
	db := seedTestDB(t)

	var logs []models.MaintenanceLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatal(err)
	}

	for _, ml := range logs {
		if ml.MaintenanceType == "emergency" {
			if ml.DowntimeHours < 0.5 || ml.DowntimeHours > 48 {
				t.Errorf("log %d emergency downtime %v outside [0.5,48]", ml.ID, ml.DowntimeHours)
			}
			continue
		}
		if !ml.Resolved {
			t.Errorf("log %d %s unresolved, only emergencies may be", ml.ID, ml.MaintenanceType)
		}
		if ml.DowntimeHours < 0.5 || ml.DowntimeHours > 12 {
			t.Errorf("log %d %s downtime %v outside [0.5,12]", ml.ID, ml.MaintenanceType, ml.DowntimeHours)
		}
	}
}

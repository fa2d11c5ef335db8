// database/seeder.go
package database

import (
	"errors"
	"fmt"
	"math"
	"time"

	"manufacturing-mcp/models"

	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// rngSeed keeps generated rows identical between runs, so reseeding an
// already populated database is a no-op.
const rngSeed = 42

// RunSeeders populates the manufacturing dataset. Every insert is keyed by
// primary key and skipped when the row already exists.
func RunSeeders(db *gorm.DB) error {
	rng := rand.New(rand.NewSource(rngSeed))

	seeders := []func(*gorm.DB, *rand.Rand) error{
		SeedFactories,
		SeedProductionLines,
		SeedMachines,
		SeedEmployees,
		SeedSuppliers,
		SeedParts,
		SeedPurchaseOrders,
		SeedWorkOrders,
		SeedWorkOrderParts,
		SeedQualityInspections,
		SeedMaintenanceLogs,
	}
	for _, seed := range seeders {
		if err := seed(db, rng); err != nil {
			return err
		}
	}
	return nil
}

// randomDate returns a YYYY-MM-DD date between startDaysAgo and endDaysAgo
// days before today.
func randomDate(rng *rand.Rand, startDaysAgo, endDaysAgo int) string {
	delta := endDaysAgo + rng.Intn(startDaysAgo-endDaysAgo+1)
	return time.Now().AddDate(0, 0, -delta).Format("2006-01-02")
}

func addDays(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }

func createIfAbsent[T any](db *gorm.DB, id uint, row *T) error {
	var existing T
	err := db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("seed insert id %d: %w", id, err)
		}
		return nil
	}
	return err
}

func SeedFactories(db *gorm.DB, _ *rand.Rand) error {
	factories := []models.Factory{
		{ID: 1, Name: "NordSteel Leipzig", Location: "Leipzig", Country: "Germany", EstablishedYear: 1987, TotalAreaSqm: 45000, Active: true},
		{ID: 2, Name: "PolyFab Milano", Location: "Milan", Country: "Italy", EstablishedYear: 1995, TotalAreaSqm: 32000, Active: true},
		{ID: 3, Name: "AeroTech Toulouse", Location: "Toulouse", Country: "France", EstablishedYear: 2001, TotalAreaSqm: 28000, Active: true},
		{ID: 4, Name: "PrecisionWorks Gdańsk", Location: "Gdańsk", Country: "Poland", EstablishedYear: 2008, TotalAreaSqm: 19000, Active: true},
		{ID: 5, Name: "MetalCore Monterrey", Location: "Monterrey", Country: "Mexico", EstablishedYear: 2012, TotalAreaSqm: 22000, Active: true},
	}
	for _, f := range factories {
		f := f
		if err := createIfAbsent(db, f.ID, &f); err != nil {
			return err
		}
	}
	return nil
}

func SeedProductionLines(db *gorm.DB, _ *rand.Rand) error {
	lines := []models.ProductionLine{
		{ID: 1, FactoryID: 1, Name: "Steel Casting Line A", ProductType: "Structural Steel", CapacityUnitsPerDay: 800, Active: true},
		{ID: 2, FactoryID: 1, Name: "Steel Casting Line B", ProductType: "Flat Rolled Steel", CapacityUnitsPerDay: 600, Active: true},
		{ID: 3, FactoryID: 1, Name: "Quality Control Line", ProductType: "Inspection", CapacityUnitsPerDay: 1200, Active: true},
		{ID: 4, FactoryID: 2, Name: "Polymer Extrusion Line 1", ProductType: "PVC Profiles", CapacityUnitsPerDay: 500, Active: true},
		{ID: 5, FactoryID: 2, Name: "Polymer Extrusion Line 2", ProductType: "HDPE Pipes", CapacityUnitsPerDay: 400, Active: true},
		{ID: 6, FactoryID: 3, Name: "Fuselage Assembly A", ProductType: "Aircraft Fuselage", CapacityUnitsPerDay: 10, Active: true},
		{ID: 7, FactoryID: 3, Name: "Wing Component Line", ProductType: "Wing Structures", CapacityUnitsPerDay: 8, Active: true},
		{ID: 8, FactoryID: 4, Name: "CNC Machining Center", ProductType: "Precision Parts", CapacityUnitsPerDay: 200, Active: true},
		{ID: 9, FactoryID: 4, Name: "Surface Treatment Line", ProductType: "Coated Parts", CapacityUnitsPerDay: 300, Active: true},
		{ID: 10, FactoryID: 5, Name: "Stamping Press Line", ProductType: "Metal Stampings", CapacityUnitsPerDay: 1000, Active: true},
	}
	for _, l := range lines {
		l := l
		if err := createIfAbsent(db, l.ID, &l); err != nil {
			return err
		}
	}
	return nil
}

func SeedMachines(db *gorm.DB, _ *rand.Rand) error {
	machines := []models.Machine{
		{ID: 1, ProductionLineID: 1, Name: "Arc Furnace #1", Model: "EAF-500", Manufacturer: "Siemens", InstalledDate: "2010-03-15", LastMaintenanceDate: "2024-10-01", Status: "operational", AgeYears: 14.0, CumulativeDowntimeHours: 120},
		{ID: 2, ProductionLineID: 1, Name: "Continuous Caster A", Model: "CC-3000", Manufacturer: "Danieli", InstalledDate: "2012-06-20", LastMaintenanceDate: "2024-11-15", Status: "operational", AgeYears: 12.0, CumulativeDowntimeHours: 80},
		{ID: 3, ProductionLineID: 2, Name: "Rolling Mill X1", Model: "RM-800", Manufacturer: "SMS Group", InstalledDate: "2015-01-10", LastMaintenanceDate: "2024-09-20", Status: "operational", AgeYears: 9.5, CumulativeDowntimeHours: 65},
		{ID: 4, ProductionLineID: 2, Name: "Coiling Machine B2", Model: "CM-200", Manufacturer: "Primetals", InstalledDate: "2018-04-05", LastMaintenanceDate: "2024-12-01", Status: "operational", AgeYears: 6.5, CumulativeDowntimeHours: 30},
		{ID: 5, ProductionLineID: 3, Name: "Ultrasonic Tester", Model: "UT-Pro X", Manufacturer: "Olympus", InstalledDate: "2020-07-11", LastMaintenanceDate: "2025-01-10", Status: "operational", AgeYears: 4.0, CumulativeDowntimeHours: 10},
		{ID: 6, ProductionLineID: 4, Name: "Extruder PE-90", Model: "PE-90L", Manufacturer: "Krauss-Maffei", InstalledDate: "2014-09-30", LastMaintenanceDate: "2024-08-01", Status: "maintenance", AgeYears: 10.0, CumulativeDowntimeHours: 200},
		{ID: 7, ProductionLineID: 4, Name: "Haul-Off Unit H4", Model: "HO-400", Manufacturer: "Battenfeld", InstalledDate: "2017-02-14", LastMaintenanceDate: "2024-10-15", Status: "operational", AgeYears: 7.5, CumulativeDowntimeHours: 55},
		{ID: 8, ProductionLineID: 5, Name: "Extruder PE-120", Model: "PE-120H", Manufacturer: "Krauss-Maffei", InstalledDate: "2019-11-25", LastMaintenanceDate: "2025-01-05", Status: "operational", AgeYears: 5.0, CumulativeDowntimeHours: 25},
		{ID: 9, ProductionLineID: 6, Name: "Riveting Robot RR-1", Model: "RR-700", Manufacturer: "KUKA", InstalledDate: "2016-05-20", LastMaintenanceDate: "2024-12-20", Status: "operational", AgeYears: 8.5, CumulativeDowntimeHours: 90},
		{ID: 10, ProductionLineID: 6, Name: "Panel Joining Unit", Model: "PJ-200", Manufacturer: "Broetje", InstalledDate: "2018-08-01", LastMaintenanceDate: "2025-01-20", Status: "operational", AgeYears: 6.5, CumulativeDowntimeHours: 45},
		{ID: 11, ProductionLineID: 7, Name: "Spar Drilling Machine", Model: "SDM-5X", Manufacturer: "Dornier", InstalledDate: "2013-03-10", LastMaintenanceDate: "2024-07-15", Status: "offline", AgeYears: 11.5, CumulativeDowntimeHours: 350},
		{ID: 12, ProductionLineID: 8, Name: "CNC Lathe L1", Model: "Mazak-QT25", Manufacturer: "Mazak", InstalledDate: "2021-01-15", LastMaintenanceDate: "2025-01-25", Status: "operational", AgeYears: 4.0, CumulativeDowntimeHours: 15},
		{ID: 13, ProductionLineID: 8, Name: "5-Axis Mill M3", Model: "DMU-95", Manufacturer: "DMG Mori", InstalledDate: "2022-06-10", LastMaintenanceDate: "2025-02-01", Status: "operational", AgeYears: 2.5, CumulativeDowntimeHours: 5},
		{ID: 14, ProductionLineID: 9, Name: "Shot Blast Unit SB2", Model: "SB-600", Manufacturer: "Wheelabrator", InstalledDate: "2016-10-20", LastMaintenanceDate: "2024-09-10", Status: "operational", AgeYears: 8.0, CumulativeDowntimeHours: 70},
		{ID: 15, ProductionLineID: 10, Name: "Hydraulic Press P1", Model: "HP-1600T", Manufacturer: "Schuler", InstalledDate: "2017-07-05", LastMaintenanceDate: "2024-11-20", Status: "operational", AgeYears: 7.5, CumulativeDowntimeHours: 95},
		{ID: 16, ProductionLineID: 10, Name: "Stamping Die System", Model: "SDS-800", Manufacturer: "Trumpf", InstalledDate: "2020-03-15", LastMaintenanceDate: "2025-01-15", Status: "operational", AgeYears: 4.5, CumulativeDowntimeHours: 20},
	}
	for _, m := range machines {
		m := m
		if err := createIfAbsent(db, m.ID, &m); err != nil {
			return err
		}
	}
	return nil
}

func SeedEmployees(db *gorm.DB, rng *rand.Rand) error {
	roles := []string{"Operator", "Senior Operator", "Inspector", "Technician", "Shift Supervisor", "Quality Engineer"}
	shifts := []string{"morning", "afternoon", "night"}
	names := []string{
		"Lukas Becker", "Maria Rossi", "Jean Dupont", "Anna Kowalski", "Carlos Mendez",
		"Sophie Laurent", "Piotr Nowak", "Elena Müller", "Ricardo García", "Hana Novak",
		"Thomas Braun", "Isabela Silva", "Marek Wójcik", "Claire Bernard", "Diego Torres",
		"Monika Krol", "Stefan Huber", "Fatima Benali", "Andrei Popescu", "Laura Esposito",
		"Hans Zimmermann", "Katarzyna Dąbrowska", "Miguel Fernández", "Sara Bianchi", "Robert Klein",
	}

	for i, name := range names {
		e := models.Employee{
			ID:        uint(i + 1),
			Name:      name,
			Role:      roles[rng.Intn(len(roles))],
			FactoryID: uint(1 + rng.Intn(5)),
			Shift:     shifts[rng.Intn(len(shifts))],
			HireDate:  randomDate(rng, 3000, 365),
			Active:    true,
		}
		if err := createIfAbsent(db, e.ID, &e); err != nil {
			return err
		}
	}
	return nil
}

func SeedSuppliers(db *gorm.DB, _ *rand.Rand) error {
	suppliers := []models.Supplier{
		{ID: 1, Name: "ThyssenKrupp Materials", Country: "Germany", ContactEmail: "orders@tk-materials.de", LeadTimeDays: 14, ReliabilityScore: 9.1},
		{ID: 2, Name: "SABIC Europe", Country: "Netherlands", ContactEmail: "supply@sabic.eu", LeadTimeDays: 21, ReliabilityScore: 8.4},
		{ID: 3, Name: "Hexcel Composites", Country: "USA", ContactEmail: "orders@hexcel.com", LeadTimeDays: 28, ReliabilityScore: 8.9},
		{ID: 4, Name: "Fastener World", Country: "China", ContactEmail: "sales@fastenerworld.cn", LeadTimeDays: 35, ReliabilityScore: 6.2},
		{ID: 5, Name: "Lubrizol Additives", Country: "USA", ContactEmail: "orders@lubrizol.com", LeadTimeDays: 10, ReliabilityScore: 9.5},
		{ID: 6, Name: "Sandvik Tooling", Country: "Sweden", ContactEmail: "tools@sandvik.com", LeadTimeDays: 7, ReliabilityScore: 9.7},
		{ID: 7, Name: "IGS Gaskets", Country: "Italy", ContactEmail: "info@igsgaskets.it", LeadTimeDays: 18, ReliabilityScore: 7.8},
		{ID: 8, Name: "Nippon Steel Supply", Country: "Japan", ContactEmail: "export@nippon-ss.jp", LeadTimeDays: 25, ReliabilityScore: 8.6},
	}
	for _, s := range suppliers {
		s := s
		if err := createIfAbsent(db, s.ID, &s); err != nil {
			return err
		}
	}
	return nil
}

func SeedParts(db *gorm.DB, _ *rand.Rand) error {
	parts := []models.Part{
		{ID: 1, Name: "High-Carbon Steel Billet", SKU: "SKU-1001", Category: "Raw Material", UnitCost: 480.00, StockQuantity: 320, ReorderThreshold: 100, SupplierID: 1},
		{ID: 2, Name: "PVC Resin Grade K67", SKU: "SKU-1002", Category: "Raw Material", UnitCost: 120.00, StockQuantity: 180, ReorderThreshold: 80, SupplierID: 2},
		{ID: 3, Name: "Carbon Fiber Prepreg", SKU: "SKU-1003", Category: "Composite", UnitCost: 950.00, StockQuantity: 45, ReorderThreshold: 20, SupplierID: 3},
		{ID: 4, Name: "M12 Hex Bolt (box/100)", SKU: "SKU-2001", Category: "Fastener", UnitCost: 18.50, StockQuantity: 850, ReorderThreshold: 200, SupplierID: 4},
		{ID: 5, Name: "M8 Lock Nut (box/100)", SKU: "SKU-2002", Category: "Fastener", UnitCost: 9.20, StockQuantity: 620, ReorderThreshold: 200, SupplierID: 4},
		{ID: 6, Name: "Industrial Lubricant 5L", SKU: "SKU-3001", Category: "Consumable", UnitCost: 45.00, StockQuantity: 95, ReorderThreshold: 40, SupplierID: 5},
		{ID: 7, Name: "Tungsten Carbide Insert", SKU: "SKU-3002", Category: "Tooling", UnitCost: 230.00, StockQuantity: 60, ReorderThreshold: 25, SupplierID: 6},
		{ID: 8, Name: "Hydraulic Seal Kit", SKU: "SKU-3003", Category: "Maintenance", UnitCost: 88.00, StockQuantity: 35, ReorderThreshold: 30, SupplierID: 7},
		{ID: 9, Name: "HDPE Granules 25kg", SKU: "SKU-1004", Category: "Raw Material", UnitCost: 85.00, StockQuantity: 260, ReorderThreshold: 80, SupplierID: 2},
		{ID: 10, Name: "Aluminum Sheet 2mm", SKU: "SKU-1005", Category: "Raw Material", UnitCost: 310.00, StockQuantity: 140, ReorderThreshold: 50, SupplierID: 8},
		{ID: 11, Name: "Titanium Fastener Kit", SKU: "SKU-2003", Category: "Fastener", UnitCost: 175.00, StockQuantity: 28, ReorderThreshold: 20, SupplierID: 4},
		{ID: 12, Name: "Welding Wire ER70S-6", SKU: "SKU-3004", Category: "Consumable", UnitCost: 62.00, StockQuantity: 110, ReorderThreshold: 50, SupplierID: 1},
	}
	for _, p := range parts {
		p := p
		if err := createIfAbsent(db, p.ID, &p); err != nil {
			return err
		}
	}
	return nil
}

func SeedPurchaseOrders(db *gorm.DB, rng *rand.Rand) error {
	// "delivered" is weighted x3, same as the demo dataset this mirrors.
	statuses := []string{"pending", "shipped", "delivered", "delivered", "delivered", "cancelled"}

	for i := 1; i <= 60; i++ {
		orderDate := randomDate(rng, 180, 10)
		expected := addDays(orderDate, 7+rng.Intn(34))
		status := statuses[rng.Intn(len(statuses))]

		po := models.PurchaseOrder{
			ID:               uint(i),
			SupplierID:       uint(1 + rng.Intn(8)),
			PartID:           uint(1 + rng.Intn(12)),
			Quantity:         50 + rng.Intn(451),
			UnitPrice:        round2(10 + rng.Float64()*590),
			OrderDate:        orderDate,
			ExpectedDelivery: expected,
			Status:           status,
		}
		if status == "delivered" {
			actual := addDays(expected, -3+rng.Intn(19))
			po.ActualDelivery = &actual
		}
		if err := createIfAbsent(db, po.ID, &po); err != nil {
			return err
		}
	}
	return nil
}

var lineProducts = map[uint]string{
	1: "HEA 200 Beam", 2: "Hot-Rolled Coil", 3: "HEA 200 Beam", 4: "PVC Window Profile",
	5: "HDPE Water Pipe 110mm", 6: "Fuselage Panel Section 12", 7: "Wing Rib Assembly",
	8: "Precision Shaft 40mm", 9: "Brake Disc Housing", 10: "Metal Stamping Bracket A",
}

func SeedWorkOrders(db *gorm.DB, rng *rand.Rand) error {
	statuses := []string{"planned", "in_progress", "completed", "completed", "completed", "cancelled"}
	priorities := []string{"low", "medium", "high", "critical"}

	for i := 1; i <= 200; i++ {
		lineID := uint(1 + rng.Intn(10))
		target := 50 + rng.Intn(451)
		status := statuses[rng.Intn(len(statuses))]
		start := randomDate(rng, 200, 5)

		// Produced quantity tracks status: completed orders hit the target,
		// in-progress orders sit somewhere inside it, the rest are untouched.
		produced := 0
		switch status {
		case "completed":
			produced = target
		case "in_progress":
			produced = rng.Intn(target + 1)
		}

		wo := models.WorkOrder{
			ID:               uint(i),
			ProductionLineID: lineID,
			OperatorID:       uint(1 + rng.Intn(25)),
			ProductName:      lineProducts[lineID],
			QuantityTarget:   target,
			QuantityProduced: produced,
			StartDate:        start,
			Status:           status,
			Priority:         priorities[rng.Intn(len(priorities))],
		}
		if status == "completed" {
			end := addDays(start, 1+rng.Intn(14))
			wo.EndDate = &end
		}
		if err := createIfAbsent(db, wo.ID, &wo); err != nil {
			return err
		}
	}
	return nil
}

func SeedWorkOrderParts(db *gorm.DB, rng *rand.Rand) error {
	id := uint(1)
	for woID := 1; woID <= 200; woID++ {
		n := 1 + rng.Intn(3)
		for j := 0; j < n; j++ {
			qtyReq := 5 + rng.Intn(96)
			qtyUsed := qtyReq
			if rng.Float64() <= 0.2 {
				qtyUsed = rng.Intn(qtyReq + 1)
			}
			wop := models.WorkOrderPart{
				ID:               id,
				WorkOrderID:      uint(woID),
				PartID:           uint(1 + rng.Intn(12)),
				QuantityRequired: qtyReq,
				QuantityUsed:     qtyUsed,
			}
			if err := createIfAbsent(db, wop.ID, &wop); err != nil {
				return err
			}
			id++
		}
	}
	return nil
}

func SeedQualityInspections(db *gorm.DB, rng *rand.Rand) error {
	defectTypes := []string{
		"Dimensional deviation", "Surface crack", "Porosity", "Delamination",
		"Weld defect", "Hardness out of spec", "Paint adhesion failure",
	}

	for i := 1; i <= 500; i++ {
		qi := models.QualityInspection{
			ID:             uint(i),
			WorkOrderID:    uint(1 + rng.Intn(200)),
			InspectorID:    uint(1 + rng.Intn(25)),
			InspectionDate: randomDate(rng, 200, 1),
		}

		switch p := rng.Intn(100); {
		case p < 70:
			qi.Result = "pass"
		case p < 85:
			qi.Result = "fail"
		default:
			qi.Result = "conditional_pass"
		}

		// Defect fields are only populated for non-passing inspections, and
		// even then the defect type is sometimes left unrecorded.
		if qi.Result != "pass" && rng.Intn(10) < 7 {
			defect := defectTypes[rng.Intn(len(defectTypes))]
			qi.DefectType = &defect
			qi.DefectCount = 1 + rng.Intn(8)
		}

		if err := createIfAbsent(db, qi.ID, &qi); err != nil {
			return err
		}
	}
	return nil
}

func SeedMaintenanceLogs(db *gorm.DB, rng *rand.Rand) error {
	descriptions := []string{
		"Routine lubrication and belt replacement",
		"Bearing replacement after vibration alert",
		"Emergency shutdown due to overheating, coolant replaced",
		"Calibration and sensor alignment",
		"Hydraulic seal replacement",
		"Conveyor chain replacement",
		"Electrical fault diagnosis and repair",
		"Scheduled annual inspection",
		"Motor winding repair",
		"Control panel firmware update and diagnostics",
	}

	for i := 1; i <= 150; i++ {
		ml := models.MaintenanceLog{
			ID:              uint(i),
			MachineID:       uint(1 + rng.Intn(16)),
			TechnicianID:    uint(1 + rng.Intn(25)),
			MaintenanceDate: randomDate(rng, 365, 1),
			Cost:            round2(200 + rng.Float64()*14800),
			Description:     descriptions[rng.Intn(len(descriptions))],
			Resolved:        true,
		}

		switch p := rng.Intn(100); {
		case p < 50:
			ml.MaintenanceType = "preventive"
		case p < 85:
			ml.MaintenanceType = "corrective"
		default:
			ml.MaintenanceType = "emergency"
		}

		// Emergency breakdowns span a much wider downtime range and are the
		// only type that can stay unresolved.
		if ml.MaintenanceType == "emergency" {
			ml.DowntimeHours = round1(0.5 + rng.Float64()*47.5)
			ml.Resolved = rng.Float64() > 0.1
		} else {
			ml.DowntimeHours = round1(0.5 + rng.Float64()*11.5)
		}

		if err := createIfAbsent(db, ml.ID, &ml); err != nil {
			return err
		}
	}
	return nil
}

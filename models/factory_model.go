package models

type Factory struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"not null"`
	Location        string  `json:"location" gorm:"not null"`
	Country         string  `json:"country" gorm:"not null"`
	EstablishedYear int     `json:"established_year"`
	TotalAreaSqm    float64 `json:"total_area_sqm"`
	Active          bool    `json:"active" gorm:"default:true"`
}

type ProductionLine struct {
	ID                  uint     `json:"id" gorm:"primaryKey"`
	FactoryID           uint     `json:"factory_id" gorm:"not null"`
	Factory             *Factory `json:"-" gorm:"foreignKey:FactoryID"`
	Name                string   `json:"name" gorm:"not null"`
	ProductType         string   `json:"product_type" gorm:"not null"`
	CapacityUnitsPerDay int      `json:"capacity_units_per_day"`
	Active              bool     `json:"active" gorm:"default:true"`
}

type Machine struct {
	ID                      uint            `json:"id" gorm:"primaryKey"`
	ProductionLineID        uint            `json:"production_line_id" gorm:"not null"`
	ProductionLine          *ProductionLine `json:"-" gorm:"foreignKey:ProductionLineID"`
	Name                    string          `json:"name" gorm:"not null"`
	Model                   string          `json:"model" gorm:"not null"`
	Manufacturer            string          `json:"manufacturer" gorm:"not null"`
	InstalledDate           string          `json:"installed_date"`
	LastMaintenanceDate     string          `json:"last_maintenance_date"`
	Status                  string          `json:"status" gorm:"default:'operational';check:chk_machines_status,status IN ('operational','maintenance','offline')"`
	AgeYears                float64         `json:"age_years"`
	CumulativeDowntimeHours float64         `json:"cumulative_downtime_hours" gorm:"default:0"`
}

package models

type MaintenanceLog struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MachineID       uint      `json:"machine_id" gorm:"not null"`
	Machine         *Machine  `json:"-" gorm:"foreignKey:MachineID"`
	TechnicianID    uint      `json:"technician_id" gorm:"not null"`
	Technician      *Employee `json:"-" gorm:"foreignKey:TechnicianID"`
	MaintenanceDate string    `json:"maintenance_date" gorm:"not null"`
	MaintenanceType string    `json:"maintenance_type" gorm:"not null;check:chk_maintenance_logs_type,maintenance_type IN ('preventive','corrective','emergency')"`
	DowntimeHours   float64   `json:"downtime_hours" gorm:"not null"`
	Cost            float64   `json:"cost"`
	Description     string    `json:"description"`
	Resolved        bool      `json:"resolved" gorm:"not null"`
}

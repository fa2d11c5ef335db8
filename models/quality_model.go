package models

type QualityInspection struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	WorkOrderID    uint       `json:"work_order_id" gorm:"not null"`
	WorkOrder      *WorkOrder `json:"-" gorm:"foreignKey:WorkOrderID"`
	InspectorID    uint       `json:"inspector_id" gorm:"not null"`
	Inspector      *Employee  `json:"-" gorm:"foreignKey:InspectorID"`
	InspectionDate string     `json:"inspection_date" gorm:"not null"`
	Result         string     `json:"result" gorm:"not null;check:chk_quality_inspections_result,result IN ('pass','fail','conditional_pass')"`
	DefectType     *string    `json:"defect_type"`
	DefectCount    int        `json:"defect_count" gorm:"default:0"`
	Notes          *string    `json:"notes"`
}

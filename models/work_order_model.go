package models

type WorkOrder struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	ProductionLineID uint            `json:"production_line_id" gorm:"not null"`
	ProductionLine   *ProductionLine `json:"-" gorm:"foreignKey:ProductionLineID"`
	OperatorID       uint            `json:"operator_id" gorm:"not null"`
	Operator         *Employee       `json:"-" gorm:"foreignKey:OperatorID"`
	ProductName      string          `json:"product_name" gorm:"not null"`
	QuantityTarget   int             `json:"quantity_target" gorm:"not null"`
	QuantityProduced int             `json:"quantity_produced" gorm:"default:0"`
	StartDate        string          `json:"start_date"`
	EndDate          *string         `json:"end_date"`
	Status           string          `json:"status" gorm:"default:'planned';check:chk_work_orders_status,status IN ('planned','in_progress','completed','cancelled')"`
	Priority         string          `json:"priority" gorm:"default:'medium';check:chk_work_orders_priority,priority IN ('low','medium','high','critical')"`
}

type WorkOrderPart struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	WorkOrderID      uint       `json:"work_order_id" gorm:"not null"`
	WorkOrder        *WorkOrder `json:"-" gorm:"foreignKey:WorkOrderID"`
	PartID           uint       `json:"part_id" gorm:"not null"`
	Part             *Part      `json:"-" gorm:"foreignKey:PartID"`
	QuantityRequired int        `json:"quantity_required" gorm:"not null"`
	QuantityUsed     int        `json:"quantity_used" gorm:"default:0"`
}

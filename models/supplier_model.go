package models

type Supplier struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	Name             string  `json:"name" gorm:"not null"`
	Country          string  `json:"country" gorm:"not null"`
	ContactEmail     string  `json:"contact_email"`
	LeadTimeDays     int     `json:"lead_time_days"`
	ReliabilityScore float64 `json:"reliability_score" gorm:"check:chk_suppliers_reliability,reliability_score BETWEEN 0 AND 10"`
}

type Part struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	SKU              string    `json:"sku" gorm:"unique;not null"`
	Category         string    `json:"category" gorm:"not null"`
	UnitCost         float64   `json:"unit_cost"`
	StockQuantity    int       `json:"stock_quantity" gorm:"default:0"`
	ReorderThreshold int       `json:"reorder_threshold" gorm:"default:50"`
	SupplierID       uint      `json:"supplier_id" gorm:"not null"`
	Supplier         *Supplier `json:"-" gorm:"foreignKey:SupplierID"`
}

type PurchaseOrder struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	SupplierID       uint      `json:"supplier_id" gorm:"not null"`
	Supplier         *Supplier `json:"-" gorm:"foreignKey:SupplierID"`
	PartID           uint      `json:"part_id" gorm:"not null"`
	Part             *Part     `json:"-" gorm:"foreignKey:PartID"`
	Quantity         int       `json:"quantity" gorm:"not null"`
	UnitPrice        float64   `json:"unit_price" gorm:"not null"`
	OrderDate        string    `json:"order_date" gorm:"not null"`
	ExpectedDelivery string    `json:"expected_delivery"`
	ActualDelivery   *string   `json:"actual_delivery"`
	Status           string    `json:"status" gorm:"default:'pending';check:chk_purchase_orders_status,status IN ('pending','shipped','delivered','cancelled')"`
}

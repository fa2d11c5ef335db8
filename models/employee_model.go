package models

type Employee struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	Name      string   `json:"name" gorm:"not null"`
	Role      string   `json:"role" gorm:"not null"`
	FactoryID uint     `json:"factory_id" gorm:"not null"`
	Factory   *Factory `json:"-" gorm:"foreignKey:FactoryID"`
	Shift     string   `json:"shift" gorm:"check:chk_employees_shift,shift IN ('morning','afternoon','night')"`
	HireDate  string   `json:"hire_date"`
	Active    bool     `json:"active" gorm:"default:true"`
}

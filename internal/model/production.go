package model

// ProductionRecord is a single production run: a lot of raw goods sorted and
// packed for a client on a given calendar day.
type ProductionRecord struct {
	BaseModel
	Date            string  `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	LotNumber       string  `gorm:"type:varchar(100);not null;index" json:"lot_number" validate:"required"`
	ClientName      string  `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	ProductName     string  `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`
	Packaging       string  `gorm:"type:varchar(255)" json:"packaging"`
	EmployeeCount   int     `gorm:"default:0" json:"employee_count" validate:"gte=0"`
	TotalProduction float64 `gorm:"default:0" json:"total_production" validate:"gte=0"` // finished units
	TotalWeightKg   float64 `gorm:"default:0" json:"total_weight_kg" validate:"gte=0"`
	WasteKg         float64 `gorm:"default:0" json:"waste_kg" validate:"gte=0"`
	InfestationRate float64 `gorm:"default:0" json:"infestation_rate" validate:"gte=0,lte=100"`

	// Attribution of the operator who keyed the record in.
	UserID   string `gorm:"type:varchar(255)" json:"user_id,omitempty"`
	UserName string `gorm:"type:varchar(255)" json:"user_name,omitempty"`
}

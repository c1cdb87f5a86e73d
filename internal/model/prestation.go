package model

// PrestationProdRecord is a billable sorting/packaging service performed on
// a client's own goods. TotalAmount is snapshotted at entry time like on
// purchases.
type PrestationProdRecord struct {
	BaseModel
	Date          string  `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	LotNumber     string  `gorm:"type:varchar(100);not null;index" json:"lot_number" validate:"required"`
	ClientName    string  `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	ServiceType   string  `gorm:"type:varchar(255)" json:"service_type"`
	WeightInKg    float64 `gorm:"default:0" json:"weight_in_kg" validate:"gte=0"`
	WeightOutKg   float64 `gorm:"default:0" json:"weight_out_kg" validate:"gte=0"`
	WasteKg       float64 `gorm:"default:0" json:"waste_kg" validate:"gte=0"`
	UnitPrice     float64 `gorm:"default:0" json:"unit_price" validate:"gte=0"`
	TotalAmount   float64 `gorm:"default:0" json:"total_amount"`
	EmployeeCount int     `gorm:"default:0" json:"employee_count" validate:"gte=0"`

	UserID   string `gorm:"type:varchar(255)" json:"user_id,omitempty"`
	UserName string `gorm:"type:varchar(255)" json:"user_name,omitempty"`
}

// PrestationEtuvageRecord is a billable steaming service. It tracks humidity
// and duration instead of waste.
type PrestationEtuvageRecord struct {
	BaseModel
	Date          string  `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	LotNumber     string  `gorm:"type:varchar(100);not null;index" json:"lot_number" validate:"required"`
	ClientName    string  `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	WeightInKg    float64 `gorm:"default:0" json:"weight_in_kg" validate:"gte=0"`
	WeightOutKg   float64 `gorm:"default:0" json:"weight_out_kg" validate:"gte=0"`
	HumidityLevel float64 `gorm:"default:0" json:"humidity_level" validate:"gte=0,lte=100"`
	DurationHours float64 `gorm:"default:0" json:"duration_hours" validate:"gte=0"`
	UnitPrice     float64 `gorm:"default:0" json:"unit_price" validate:"gte=0"`
	TotalAmount   float64 `gorm:"default:0" json:"total_amount"`
	EmployeeCount int     `gorm:"default:0" json:"employee_count" validate:"gte=0"`

	UserID   string `gorm:"type:varchar(255)" json:"user_id,omitempty"`
	UserName string `gorm:"type:varchar(255)" json:"user_name,omitempty"`
}

package model

// PurchaseRecord is a goods-receipt event: raw stock entering the site under
// a lot number. TotalAmount is snapshotted at entry time (quantity * unit
// price) and never re-derived afterwards.
type PurchaseRecord struct {
	BaseModel
	Date            string  `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	LotNumber       string  `gorm:"type:varchar(100);not null;index" json:"lot_number" validate:"required"`
	SupplierName    string  `gorm:"type:varchar(255);not null" json:"supplier_name" validate:"required"`
	ItemName        string  `gorm:"type:varchar(255);not null;index" json:"item_name" validate:"required"`
	Variety         string  `gorm:"type:varchar(255)" json:"variety"`
	Category        string  `gorm:"type:varchar(255)" json:"category"`
	Quantity        float64 `gorm:"default:0" json:"quantity" validate:"gte=0"` // kg
	Unit            string  `gorm:"type:varchar(20);default:'kg'" json:"unit"`
	UnitPrice       float64 `gorm:"default:0" json:"unit_price" validate:"gte=0"`
	TotalAmount     float64 `gorm:"default:0" json:"total_amount"`
	InfestationRate float64 `gorm:"default:0" json:"infestation_rate" validate:"gte=0,lte=100"`

	UserID   string `gorm:"type:varchar(255)" json:"user_id,omitempty"`
	UserName string `gorm:"type:varchar(255)" json:"user_name,omitempty"`
}

package model

// StockOutRecord is an outbound stock-consumption event. Nothing validates
// it against remaining stock; the reconciliation view surfaces negative
// balances instead of blocking them.
type StockOutRecord struct {
	BaseModel
	Date      string  `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	LotNumber string  `gorm:"type:varchar(100);index" json:"lot_number"`
	ItemName  string  `gorm:"type:varchar(255);not null;index" json:"item_name" validate:"required"`
	Quantity  float64 `gorm:"default:0" json:"quantity" validate:"gte=0"` // kg
	Reason    string  `gorm:"type:text" json:"reason"`

	UserID   string `gorm:"type:varchar(255)" json:"user_id,omitempty"`
	UserName string `gorm:"type:varchar(255)" json:"user_name,omitempty"`
}

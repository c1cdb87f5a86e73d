package repository

import (
	"go-agroprod-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(record *model.PurchaseRecord) error
	FindAll() ([]model.PurchaseRecord, error)
	Search(term string) ([]model.PurchaseRecord, error)
	FindByID(id uuid.UUID) (*model.PurchaseRecord, error)
	Update(record *model.PurchaseRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []model.PurchaseRecord) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(record *model.PurchaseRecord) error {
	return r.db.Create(record).Error
}

func (r *purchaseRepo) FindAll() ([]model.PurchaseRecord, error) {
	var records []model.PurchaseRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// Search filters the journal by lot number, item or supplier substring,
// case-insensitive, newest first.
func (r *purchaseRepo) Search(term string) ([]model.PurchaseRecord, error) {
	var records []model.PurchaseRecord
	pattern := "%" + term + "%"
	err := r.db.
		Where("lot_number ILIKE ? OR item_name ILIKE ? OR supplier_name ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.PurchaseRecord, error) {
	var record model.PurchaseRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *purchaseRepo) Update(record *model.PurchaseRecord) error {
	return r.db.Save(record).Error
}

func (r *purchaseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.PurchaseRecord{}, "id = ?", id).Error
}

func (r *purchaseRepo) ReplaceAll(records []model.PurchaseRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.PurchaseRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

package repository

import (
	"go-agroprod-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockOutRepository interface {
	Create(record *model.StockOutRecord) error
	FindAll() ([]model.StockOutRecord, error)
	Search(term string) ([]model.StockOutRecord, error)
	FindByID(id uuid.UUID) (*model.StockOutRecord, error)
	Update(record *model.StockOutRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []model.StockOutRecord) error
}

type stockOutRepo struct {
	db *gorm.DB
}

func NewStockOutRepo(db *gorm.DB) StockOutRepository {
	return &stockOutRepo{db}
}

func (r *stockOutRepo) Create(record *model.StockOutRecord) error {
	return r.db.Create(record).Error
}

func (r *stockOutRepo) FindAll() ([]model.StockOutRecord, error) {
	var records []model.StockOutRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *stockOutRepo) Search(term string) ([]model.StockOutRecord, error) {
	var records []model.StockOutRecord
	pattern := "%" + term + "%"
	err := r.db.
		Where("lot_number ILIKE ? OR item_name ILIKE ? OR reason ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *stockOutRepo) FindByID(id uuid.UUID) (*model.StockOutRecord, error) {
	var record model.StockOutRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *stockOutRepo) Update(record *model.StockOutRecord) error {
	return r.db.Save(record).Error
}

func (r *stockOutRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.StockOutRecord{}, "id = ?", id).Error
}

func (r *stockOutRepo) ReplaceAll(records []model.StockOutRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.StockOutRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

package repository

import (
	"go-agroprod-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionRepository interface {
	Create(record *model.ProductionRecord) error
	FindAll() ([]model.ProductionRecord, error)
	FindRecent(limit int) ([]model.ProductionRecord, error)
	FindByID(id uuid.UUID) (*model.ProductionRecord, error)
	Update(record *model.ProductionRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []model.ProductionRecord) error
}

type productionRepo struct {
	db *gorm.DB
}

func NewProductionRepo(db *gorm.DB) ProductionRepository {
	return &productionRepo{db}
}

func (r *productionRepo) Create(record *model.ProductionRecord) error {
	return r.db.Create(record).Error
}

// FindAll returns the full collection, newest first. The aggregation engines
// always reduce the complete collection; there is no incremental path.
func (r *productionRepo) FindAll() ([]model.ProductionRecord, error) {
	var records []model.ProductionRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// FindRecent returns the latest limit records, used as the bounded sample for
// AI insights.
func (r *productionRepo) FindRecent(limit int) ([]model.ProductionRecord, error) {
	var records []model.ProductionRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *productionRepo) FindByID(id uuid.UUID) (*model.ProductionRecord, error) {
	var record model.ProductionRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *productionRepo) Update(record *model.ProductionRecord) error {
	return r.db.Save(record).Error
}

func (r *productionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ProductionRecord{}, "id = ?", id).Error
}

func (r *productionRepo) ReplaceAll(records []model.ProductionRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.ProductionRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

package repository

import (
	"go-agroprod-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrestationProdRepository interface {
	Create(record *model.PrestationProdRecord) error
	FindAll() ([]model.PrestationProdRecord, error)
	FindByID(id uuid.UUID) (*model.PrestationProdRecord, error)
	Update(record *model.PrestationProdRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []model.PrestationProdRecord) error
}

type prestationProdRepo struct {
	db *gorm.DB
}

func NewPrestationProdRepo(db *gorm.DB) PrestationProdRepository {
	return &prestationProdRepo{db}
}

func (r *prestationProdRepo) Create(record *model.PrestationProdRecord) error {
	return r.db.Create(record).Error
}

func (r *prestationProdRepo) FindAll() ([]model.PrestationProdRecord, error) {
	var records []model.PrestationProdRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *prestationProdRepo) FindByID(id uuid.UUID) (*model.PrestationProdRecord, error) {
	var record model.PrestationProdRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *prestationProdRepo) Update(record *model.PrestationProdRecord) error {
	return r.db.Save(record).Error
}

func (r *prestationProdRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.PrestationProdRecord{}, "id = ?", id).Error
}

func (r *prestationProdRepo) ReplaceAll(records []model.PrestationProdRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.PrestationProdRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

type PrestationEtuvageRepository interface {
	Create(record *model.PrestationEtuvageRecord) error
	FindAll() ([]model.PrestationEtuvageRecord, error)
	FindByID(id uuid.UUID) (*model.PrestationEtuvageRecord, error)
	Update(record *model.PrestationEtuvageRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []model.PrestationEtuvageRecord) error
}

type prestationEtuvageRepo struct {
	db *gorm.DB
}

func NewPrestationEtuvageRepo(db *gorm.DB) PrestationEtuvageRepository {
	return &prestationEtuvageRepo{db}
}

func (r *prestationEtuvageRepo) Create(record *model.PrestationEtuvageRecord) error {
	return r.db.Create(record).Error
}

func (r *prestationEtuvageRepo) FindAll() ([]model.PrestationEtuvageRecord, error) {
	var records []model.PrestationEtuvageRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *prestationEtuvageRepo) FindByID(id uuid.UUID) (*model.PrestationEtuvageRecord, error) {
	var record model.PrestationEtuvageRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *prestationEtuvageRepo) Update(record *model.PrestationEtuvageRecord) error {
	return r.db.Save(record).Error
}

func (r *prestationEtuvageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.PrestationEtuvageRecord{}, "id = ?", id).Error
}

func (r *prestationEtuvageRepo) ReplaceAll(records []model.PrestationEtuvageRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.PrestationEtuvageRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

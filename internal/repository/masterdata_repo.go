package repository

import (
	"go-agroprod-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MasterDataRepository interface {
	GetAll() (*model.MasterData, error)
	AddValue(kind model.MasterDataKind, value string) error
	RemoveValue(kind model.MasterDataKind, value string) error
	SeedDefaults() error
	ReplaceAll(data *model.MasterData) error
}

type masterDataRepo struct {
	db *gorm.DB
}

func NewMasterDataRepo(db *gorm.DB) MasterDataRepository {
	return &masterDataRepo{db}
}

func (r *masterDataRepo) GetAll() (*model.MasterData, error) {
	var entries []model.MasterDataEntry
	if err := r.db.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	data := &model.MasterData{}
	for _, e := range entries {
		switch e.Kind {
		case model.KindProducts:
			data.Products = append(data.Products, e.Value)
		case model.KindClients:
			data.Clients = append(data.Clients, e.Value)
		case model.KindPackagings:
			data.Packagings = append(data.Packagings, e.Value)
		case model.KindSuppliers:
			data.Suppliers = append(data.Suppliers, e.Value)
		case model.KindPurchaseCategories:
			data.PurchaseCategories = append(data.PurchaseCategories, e.Value)
		case model.KindServiceTypes:
			data.ServiceTypes = append(data.ServiceTypes, e.Value)
		}
	}
	return data, nil
}

func (r *masterDataRepo) AddValue(kind model.MasterDataKind, value string) error {
	entry := model.MasterDataEntry{Kind: kind, Value: value}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

// RemoveValue drops a vocabulary value. Records referencing it keep their
// string copy; no relational integrity is enforced.
func (r *masterDataRepo) RemoveValue(kind model.MasterDataKind, value string) error {
	return r.db.Where("kind = ? AND value = ?", kind, value).Delete(&model.MasterDataEntry{}).Error
}

// SeedDefaults populates empty vocabularies with the default set. Vocabularies
// that already hold values are left alone.
func (r *masterDataRepo) SeedDefaults() error {
	for _, kind := range model.AllMasterDataKinds {
		var count int64
		if err := r.db.Model(&model.MasterDataEntry{}).Where("kind = ?", kind).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		for _, value := range model.DefaultMasterData.ValuesFor(kind) {
			if err := r.AddValue(kind, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *masterDataRepo) ReplaceAll(data *model.MasterData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.MasterDataEntry{}).Error; err != nil {
			return err
		}
		for _, kind := range model.AllMasterDataKinds {
			for _, value := range data.ValuesFor(kind) {
				entry := model.MasterDataEntry{Kind: kind, Value: value}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

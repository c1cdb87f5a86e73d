package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/pkg/clients/cloudstore"
)

var ErrCloudBackupDisabled = errors.New("cloud backup is not configured")

// BackupBundle is the full database snapshot moved in and out of the API.
// A restore replaces every collection wholesale with the bundle contents.
type BackupBundle struct {
	ExportDate         string                          `json:"export_date"`
	Productions        []model.ProductionRecord        `json:"productions"`
	Purchases          []model.PurchaseRecord          `json:"purchases"`
	StockOuts          []model.StockOutRecord          `json:"stock_outs"`
	PrestationsProd    []model.PrestationProdRecord    `json:"prestations_prod"`
	PrestationsEtuvage []model.PrestationEtuvageRecord `json:"prestations_etuvage"`
	MasterData         *model.MasterData               `json:"master_data"`
	Users              []model.User                    `json:"users"`
}

type BackupService interface {
	Export() (*BackupBundle, error)
	Import(bundle *BackupBundle) error
	CloudSave(ctx context.Context) (string, error)
	CloudRestore(ctx context.Context) error
}

type backupService struct {
	productionRepo repository.ProductionRepository
	purchaseRepo   repository.PurchaseRepository
	stockOutRepo   repository.StockOutRepository
	prestProdRepo  repository.PrestationProdRepository
	prestEtuvRepo  repository.PrestationEtuvageRepository
	masterDataRepo repository.MasterDataRepository
	userRepo       repository.UserRepository
	cloud          cloudstore.Client
	log            *zap.Logger
}

func NewBackupService(
	productionRepo repository.ProductionRepository,
	purchaseRepo repository.PurchaseRepository,
	stockOutRepo repository.StockOutRepository,
	prestProdRepo repository.PrestationProdRepository,
	prestEtuvRepo repository.PrestationEtuvageRepository,
	masterDataRepo repository.MasterDataRepository,
	userRepo repository.UserRepository,
	cloud cloudstore.Client,
	log *zap.Logger,
) BackupService {
	return &backupService{
		productionRepo: productionRepo,
		purchaseRepo:   purchaseRepo,
		stockOutRepo:   stockOutRepo,
		prestProdRepo:  prestProdRepo,
		prestEtuvRepo:  prestEtuvRepo,
		masterDataRepo: masterDataRepo,
		userRepo:       userRepo,
		cloud:          cloud,
		log:            log,
	}
}

func (s *backupService) Export() (*BackupBundle, error) {
	bundle := &BackupBundle{ExportDate: time.Now().Format(time.RFC3339)}

	var err error
	if bundle.Productions, err = s.productionRepo.FindAll(); err != nil {
		return nil, err
	}
	if bundle.Purchases, err = s.purchaseRepo.FindAll(); err != nil {
		return nil, err
	}
	if bundle.StockOuts, err = s.stockOutRepo.FindAll(); err != nil {
		return nil, err
	}
	if bundle.PrestationsProd, err = s.prestProdRepo.FindAll(); err != nil {
		return nil, err
	}
	if bundle.PrestationsEtuvage, err = s.prestEtuvRepo.FindAll(); err != nil {
		return nil, err
	}
	if bundle.MasterData, err = s.masterDataRepo.GetAll(); err != nil {
		return nil, err
	}
	if bundle.Users, err = s.userRepo.FindAll(); err != nil {
		return nil, err
	}

	return bundle, nil
}

// Import overwrites every collection with the bundle contents. There is no
// merging: a restore means "make the database look exactly like this file".
func (s *backupService) Import(bundle *BackupBundle) error {
	if bundle == nil {
		return errors.New("empty backup bundle")
	}

	if err := s.productionRepo.ReplaceAll(bundle.Productions); err != nil {
		return err
	}
	if err := s.purchaseRepo.ReplaceAll(bundle.Purchases); err != nil {
		return err
	}
	if err := s.stockOutRepo.ReplaceAll(bundle.StockOuts); err != nil {
		return err
	}
	if err := s.prestProdRepo.ReplaceAll(bundle.PrestationsProd); err != nil {
		return err
	}
	if err := s.prestEtuvRepo.ReplaceAll(bundle.PrestationsEtuvage); err != nil {
		return err
	}
	if bundle.MasterData != nil {
		if err := s.masterDataRepo.ReplaceAll(bundle.MasterData); err != nil {
			return err
		}
	}
	if len(bundle.Users) > 0 {
		if err := s.userRepo.ReplaceAll(bundle.Users); err != nil {
			return err
		}
	}

	s.log.Info("backup imported",
		zap.String("export_date", bundle.ExportDate),
		zap.Int("productions", len(bundle.Productions)),
		zap.Int("purchases", len(bundle.Purchases)),
		zap.Int("stock_outs", len(bundle.StockOuts)))
	return nil
}

// CloudSave exports the current state and pushes it to the remote store.
// Returns the export date stamped on the saved bundle.
func (s *backupService) CloudSave(ctx context.Context) (string, error) {
	if s.cloud == nil {
		return "", ErrCloudBackupDisabled
	}

	bundle, err := s.Export()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}

	if err := s.cloud.Save(ctx, payload); err != nil {
		s.log.Error("cloud backup failed", zap.Error(err))
		return "", err
	}

	s.log.Info("cloud backup saved", zap.String("export_date", bundle.ExportDate))
	return bundle.ExportDate, nil
}

func (s *backupService) CloudRestore(ctx context.Context) error {
	if s.cloud == nil {
		return ErrCloudBackupDisabled
	}

	raw, err := s.cloud.Restore(ctx)
	if err != nil {
		return err
	}

	var bundle BackupBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return errors.New("cloud backup is corrupted")
	}

	return s.Import(&bundle)
}

package service

import (
	"errors"
	"fmt"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/internal/ws"
	"go-agroprod-ws/pkg/validator"

	"github.com/google/uuid"
)

type PrestationService interface {
	CreateProd(req *model.PrestationProdRecord, userID, userName string) error
	UpdateProd(id uuid.UUID, req *PrestationProdUpdateRequest, userID string) (*model.PrestationProdRecord, error)
	DeleteProd(id uuid.UUID) error
	GetAllProd() ([]model.PrestationProdRecord, error)

	CreateEtuvage(req *model.PrestationEtuvageRecord, userID, userName string) error
	UpdateEtuvage(id uuid.UUID, req *PrestationEtuvageUpdateRequest, userID string) (*model.PrestationEtuvageRecord, error)
	DeleteEtuvage(id uuid.UUID) error
	GetAllEtuvage() ([]model.PrestationEtuvageRecord, error)
}

type PrestationProdUpdateRequest struct {
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	LotNumber     *string  `json:"lot_number"`
	ClientName    *string  `json:"client_name"`
	ServiceType   *string  `json:"service_type"`
	WeightInKg    *float64 `json:"weight_in_kg" validate:"omitempty,gte=0"`
	WeightOutKg   *float64 `json:"weight_out_kg" validate:"omitempty,gte=0"`
	WasteKg       *float64 `json:"waste_kg" validate:"omitempty,gte=0"`
	UnitPrice     *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	TotalAmount   *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	EmployeeCount *int     `json:"employee_count" validate:"omitempty,gte=0"`
}

type PrestationEtuvageUpdateRequest struct {
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	LotNumber     *string  `json:"lot_number"`
	ClientName    *string  `json:"client_name"`
	WeightInKg    *float64 `json:"weight_in_kg" validate:"omitempty,gte=0"`
	WeightOutKg   *float64 `json:"weight_out_kg" validate:"omitempty,gte=0"`
	HumidityLevel *float64 `json:"humidity_level" validate:"omitempty,gte=0,lte=100"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gte=0"`
	UnitPrice     *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	TotalAmount   *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	EmployeeCount *int     `json:"employee_count" validate:"omitempty,gte=0"`
}

type prestationService struct {
	prodRepo    repository.PrestationProdRepository
	etuvageRepo repository.PrestationEtuvageRepository
	wsHub       *ws.Hub
}

func NewPrestationService(prodRepo repository.PrestationProdRepository, etuvageRepo repository.PrestationEtuvageRepository, hub *ws.Hub) PrestationService {
	return &prestationService{
		prodRepo:    prodRepo,
		etuvageRepo: etuvageRepo,
		wsHub:       hub,
	}
}

func (s *prestationService) CreateProd(req *model.PrestationProdRecord, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.LotNumber = model.NormalizeLotNumber(req.LotNumber)
	if req.LotNumber == "" {
		return errors.New("lot number is required")
	}

	// Billed on inbound weight; snapshotted at entry like purchase amounts.
	req.TotalAmount = req.WeightInKg * req.UnitPrice

	req.UserID = userID
	req.UserName = userName
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.prodRepo.Create(req); err != nil {
		return err
	}

	s.notifyChange("prestation_prod_created", userName)
	return nil
}

func (s *prestationService) UpdateProd(id uuid.UUID, req *PrestationProdUpdateRequest, userID string) (*model.PrestationProdRecord, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.prodRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("prestation not found")
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.LotNumber != nil {
		existing.LotNumber = model.NormalizeLotNumber(*req.LotNumber)
	}
	if req.ClientName != nil {
		existing.ClientName = *req.ClientName
	}
	if req.ServiceType != nil {
		existing.ServiceType = *req.ServiceType
	}
	if req.WeightInKg != nil {
		existing.WeightInKg = *req.WeightInKg
	}
	if req.WeightOutKg != nil {
		existing.WeightOutKg = *req.WeightOutKg
	}
	if req.WasteKg != nil {
		existing.WasteKg = *req.WasteKg
	}
	if req.UnitPrice != nil {
		existing.UnitPrice = *req.UnitPrice
	}
	if req.TotalAmount != nil {
		existing.TotalAmount = *req.TotalAmount
	}
	if req.EmployeeCount != nil {
		existing.EmployeeCount = *req.EmployeeCount
	}
	existing.UpdatedBy = userID

	if err := s.prodRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notifyChange("prestation_prod_updated", userID)
	return existing, nil
}

func (s *prestationService) DeleteProd(id uuid.UUID) error {
	if err := s.prodRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChange("prestation_prod_deleted", "")
	return nil
}

func (s *prestationService) GetAllProd() ([]model.PrestationProdRecord, error) {
	return s.prodRepo.FindAll()
}

func (s *prestationService) CreateEtuvage(req *model.PrestationEtuvageRecord, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.LotNumber = model.NormalizeLotNumber(req.LotNumber)
	if req.LotNumber == "" {
		return errors.New("lot number is required")
	}

	req.TotalAmount = req.WeightInKg * req.UnitPrice

	req.UserID = userID
	req.UserName = userName
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.etuvageRepo.Create(req); err != nil {
		return err
	}

	s.notifyChange("prestation_etuvage_created", userName)
	return nil
}

func (s *prestationService) UpdateEtuvage(id uuid.UUID, req *PrestationEtuvageUpdateRequest, userID string) (*model.PrestationEtuvageRecord, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.etuvageRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("prestation not found")
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.LotNumber != nil {
		existing.LotNumber = model.NormalizeLotNumber(*req.LotNumber)
	}
	if req.ClientName != nil {
		existing.ClientName = *req.ClientName
	}
	if req.WeightInKg != nil {
		existing.WeightInKg = *req.WeightInKg
	}
	if req.WeightOutKg != nil {
		existing.WeightOutKg = *req.WeightOutKg
	}
	if req.HumidityLevel != nil {
		existing.HumidityLevel = *req.HumidityLevel
	}
	if req.DurationHours != nil {
		existing.DurationHours = *req.DurationHours
	}
	if req.UnitPrice != nil {
		existing.UnitPrice = *req.UnitPrice
	}
	if req.TotalAmount != nil {
		existing.TotalAmount = *req.TotalAmount
	}
	if req.EmployeeCount != nil {
		existing.EmployeeCount = *req.EmployeeCount
	}
	existing.UpdatedBy = userID

	if err := s.etuvageRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notifyChange("prestation_etuvage_updated", userID)
	return existing, nil
}

func (s *prestationService) DeleteEtuvage(id uuid.UUID) error {
	if err := s.etuvageRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChange("prestation_etuvage_deleted", "")
	return nil
}

func (s *prestationService) GetAllEtuvage() ([]model.PrestationEtuvageRecord, error) {
	return s.etuvageRepo.FindAll()
}

func (s *prestationService) notifyChange(action, actor string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(map[string]interface{}{
		"type":   "data_changed",
		"scope":  "prestation",
		"action": action,
		"actor":  actor,
	})
}

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

type ProductionService interface {
	CreateRecord(req *model.ProductionRecord, userID, userName string) error
	UpdateRecord(id uuid.UUID, req *ProductionUpdateRequest, userID string) (*model.ProductionRecord, error)
	DeleteRecord(id uuid.UUID) error
	GetAllRecords() ([]model.ProductionRecord, error)
}

// ProductionUpdateRequest is an edit-and-merge payload: only the fields
// present overwrite the stored record, everything else is left untouched.
type ProductionUpdateRequest struct {
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	LotNumber       *string  `json:"lot_number"`
	ClientName      *string  `json:"client_name"`
	ProductName     *string  `json:"product_name"`
	Packaging       *string  `json:"packaging"`
	EmployeeCount   *int     `json:"employee_count" validate:"omitempty,gte=0"`
	TotalProduction *float64 `json:"total_production" validate:"omitempty,gte=0"`
	TotalWeightKg   *float64 `json:"total_weight_kg" validate:"omitempty,gte=0"`
	WasteKg         *float64 `json:"waste_kg" validate:"omitempty,gte=0"`
	InfestationRate *float64 `json:"infestation_rate" validate:"omitempty,gte=0,lte=100"`
}

type productionService struct {
	repo  repository.ProductionRepository
	wsHub *ws.Hub
}

func NewProductionService(repo repository.ProductionRepository, hub *ws.Hub) ProductionService {
	return &productionService{repo: repo, wsHub: hub}
}

func (s *productionService) CreateRecord(req *model.ProductionRecord, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Lot numbers get canonicalized exactly once, here at the entry boundary.
	req.LotNumber = model.NormalizeLotNumber(req.LotNumber)
	if req.LotNumber == "" {
		return errors.New("lot number is required")
	}

	req.UserID = userID
	req.UserName = userName
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.repo.Create(req); err != nil {
		return err
	}

	s.notifyChange("production_created", userName)
	return nil
}

func (s *productionService) UpdateRecord(id uuid.UUID, req *ProductionUpdateRequest, userID string) (*model.ProductionRecord, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.New("record not found")
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
	if req.ProductName != nil {
		existing.ProductName = *req.ProductName
	}
	if req.Packaging != nil {
		existing.Packaging = *req.Packaging
	}
	if req.EmployeeCount != nil {
		existing.EmployeeCount = *req.EmployeeCount
	}
	if req.TotalProduction != nil {
		existing.TotalProduction = *req.TotalProduction
	}
	if req.TotalWeightKg != nil {
		existing.TotalWeightKg = *req.TotalWeightKg
	}
	if req.WasteKg != nil {
		existing.WasteKg = *req.WasteKg
	}
	if req.InfestationRate != nil {
		existing.InfestationRate = *req.InfestationRate
	}
	existing.UpdatedBy = userID

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.notifyChange("production_updated", userID)
	return existing, nil
}

func (s *productionService) DeleteRecord(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notifyChange("production_deleted", "")
	return nil
}

func (s *productionService) GetAllRecords() ([]model.ProductionRecord, error) {
	return s.repo.FindAll()
}

func (s *productionService) notifyChange(action, actor string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(map[string]interface{}{
		"type":   "data_changed",
		"scope":  "production",
		"action": action,
		"actor":  actor,
	})
}

package service

import (
	"errors"
	"fmt"

	"go-agroprod-ws/internal/analytics"
	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/internal/ws"
	"go-agroprod-ws/pkg/validator"

	"github.com/google/uuid"
)

type StockService interface {
	CreatePurchase(req *model.PurchaseRecord, userID, userName string) error
	UpdatePurchase(id uuid.UUID, req *PurchaseUpdateRequest, userID string) (*model.PurchaseRecord, error)
	DeletePurchase(id uuid.UUID) error
	GetPurchases(searchTerm string) ([]model.PurchaseRecord, error)

	CreateStockOut(req *model.StockOutRecord, userID, userName string) error
	UpdateStockOut(id uuid.UUID, req *StockOutUpdateRequest, userID string) (*model.StockOutRecord, error)
	DeleteStockOut(id uuid.UUID) error
	GetStockOuts(searchTerm string) ([]model.StockOutRecord, error)

	GetStockStatus() ([]analytics.StockStatus, error)
}

// PurchaseUpdateRequest merges the provided fields over a stored purchase.
// TotalAmount is deliberately NOT re-derived on edit: the snapshot taken at
// entry time stands, and editing quantity without price (or the reverse) may
// leave it stale.
type PurchaseUpdateRequest struct {
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	LotNumber       *string  `json:"lot_number"`
	SupplierName    *string  `json:"supplier_name"`
	ItemName        *string  `json:"item_name"`
	Variety         *string  `json:"variety"`
	Category        *string  `json:"category"`
	Quantity        *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit            *string  `json:"unit"`
	UnitPrice       *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	TotalAmount     *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	InfestationRate *float64 `json:"infestation_rate" validate:"omitempty,gte=0,lte=100"`
}

type StockOutUpdateRequest struct {
	Date      *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	LotNumber *string  `json:"lot_number"`
	ItemName  *string  `json:"item_name"`
	Quantity  *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Reason    *string  `json:"reason"`
}

type stockService struct {
	purchaseRepo repository.PurchaseRepository
	stockOutRepo repository.StockOutRepository
	wsHub        *ws.Hub
}

func NewStockService(purchaseRepo repository.PurchaseRepository, stockOutRepo repository.StockOutRepository, hub *ws.Hub) StockService {
	return &stockService{
		purchaseRepo: purchaseRepo,
		stockOutRepo: stockOutRepo,
		wsHub:        hub,
	}
}

func (s *stockService) CreatePurchase(req *model.PurchaseRecord, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.LotNumber = model.NormalizeLotNumber(req.LotNumber)
	if req.LotNumber == "" {
		return errors.New("lot number is required")
	}
	if req.Unit == "" {
		req.Unit = "kg"
	}

	// Amount snapshot: taken once at entry, never re-derived afterwards.
	req.TotalAmount = req.Quantity * req.UnitPrice

	req.UserID = userID
	req.UserName = userName
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.purchaseRepo.Create(req); err != nil {
		return err
	}

	s.notifyChange("purchase_created", userName)
	return nil
}

func (s *stockService) UpdatePurchase(id uuid.UUID, req *PurchaseUpdateRequest, userID string) (*model.PurchaseRecord, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("purchase not found")
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.LotNumber != nil {
		existing.LotNumber = model.NormalizeLotNumber(*req.LotNumber)
	}
	if req.SupplierName != nil {
		existing.SupplierName = *req.SupplierName
	}
	if req.ItemName != nil {
		existing.ItemName = *req.ItemName
	}
	if req.Variety != nil {
		existing.Variety = *req.Variety
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		existing.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		existing.UnitPrice = *req.UnitPrice
	}
	if req.TotalAmount != nil {
		existing.TotalAmount = *req.TotalAmount
	}
	if req.InfestationRate != nil {
		existing.InfestationRate = *req.InfestationRate
	}
	existing.UpdatedBy = userID

	if err := s.purchaseRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notifyChange("purchase_updated", userID)
	return existing, nil
}

func (s *stockService) DeletePurchase(id uuid.UUID) error {
	if err := s.purchaseRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChange("purchase_deleted", "")
	return nil
}

func (s *stockService) GetPurchases(searchTerm string) ([]model.PurchaseRecord, error) {
	if searchTerm == "" {
		return s.purchaseRepo.FindAll()
	}
	return s.purchaseRepo.Search(searchTerm)
}

func (s *stockService) CreateStockOut(req *model.StockOutRecord, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.LotNumber = model.NormalizeLotNumber(req.LotNumber)
	req.UserID = userID
	req.UserName = userName
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.stockOutRepo.Create(req); err != nil {
		return err
	}

	s.notifyChange("stock_out_created", userName)
	return nil
}

func (s *stockService) UpdateStockOut(id uuid.UUID, req *StockOutUpdateRequest, userID string) (*model.StockOutRecord, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.stockOutRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("stock out not found")
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.LotNumber != nil {
		existing.LotNumber = model.NormalizeLotNumber(*req.LotNumber)
	}
	if req.ItemName != nil {
		existing.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.Reason != nil {
		existing.Reason = *req.Reason
	}
	existing.UpdatedBy = userID

	if err := s.stockOutRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notifyChange("stock_out_updated", userID)
	return existing, nil
}

func (s *stockService) DeleteStockOut(id uuid.UUID) error {
	if err := s.stockOutRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChange("stock_out_deleted", "")
	return nil
}

func (s *stockService) GetStockOuts(searchTerm string) ([]model.StockOutRecord, error) {
	if searchTerm == "" {
		return s.stockOutRepo.FindAll()
	}
	return s.stockOutRepo.Search(searchTerm)
}

// GetStockStatus reconciles the full purchase and stock-out collections into
// per-item balances. Recomputed from scratch on every call; nothing caches a
// running balance.
func (s *stockService) GetStockStatus() ([]analytics.StockStatus, error) {
	purchases, err := s.purchaseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stockOuts, err := s.stockOutRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return analytics.ReconcileStock(purchases, stockOuts), nil
}

func (s *stockService) notifyChange(action, actor string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(map[string]interface{}{
		"type":   "data_changed",
		"scope":  "stock",
		"action": action,
		"actor":  actor,
	})
}

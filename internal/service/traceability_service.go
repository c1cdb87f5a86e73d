package service

import (
	"go-agroprod-ws/internal/analytics"
	"go-agroprod-ws/internal/repository"
)

type TraceabilityService interface {
	GetLotSummaries() ([]analytics.LotSummary, error)
}

type traceabilityService struct {
	productionRepo repository.ProductionRepository
	purchaseRepo   repository.PurchaseRepository
}

func NewTraceabilityService(productionRepo repository.ProductionRepository, purchaseRepo repository.PurchaseRepository) TraceabilityService {
	return &traceabilityService{
		productionRepo: productionRepo,
		purchaseRepo:   purchaseRepo,
	}
}

// GetLotSummaries joins purchases and productions by lot number and returns
// the full per-lot history, newest lot numbers first.
func (s *traceabilityService) GetLotSummaries() ([]analytics.LotSummary, error) {
	productions, err := s.productionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return analytics.TraceLots(productions, purchases), nil
}

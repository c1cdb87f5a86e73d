package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/pkg/clients/insight"
)

// The model only sees a bounded sample of recent records so the prompt
// stays within token limits regardless of how large the journal grows.
const insightSampleSize = 50

const (
	msgNoData      = "Aucune donnée disponible pour l'analyse pour le moment."
	msgUnavailable = "Le consultant IA est actuellement indisponible ou la clé API est absente."
)

type InsightService interface {
	AnalyzeProduction(ctx context.Context) (string, error)
}

type insightService struct {
	productionRepo repository.ProductionRepository
	ai             insight.Client
	log            *zap.Logger
}

func NewInsightService(productionRepo repository.ProductionRepository, ai insight.Client, log *zap.Logger) InsightService {
	return &insightService{
		productionRepo: productionRepo,
		ai:             ai,
		log:            log,
	}
}

// AnalyzeProduction summarizes the recent production journal through the AI
// consultant. Failures degrade to a static notice rather than an error so
// the insights panel always has something to show.
func (s *insightService) AnalyzeProduction(ctx context.Context) (string, error) {
	records, err := s.productionRepo.FindRecent(insightSampleSize)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return msgNoData, nil
	}
	if s.ai == nil {
		return msgUnavailable, nil
	}

	advice, err := s.ai.Summarize(ctx, formatJournal(records))
	if err != nil {
		s.log.Warn("ai analysis failed", zap.Error(err))
		return msgUnavailable, nil
	}
	return advice, nil
}

func formatJournal(records []model.ProductionRecord) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf(
			"Date: %s, Client: %s, Produit: %s, Employés: %d, Production: %g unités, Poids: %gkg, Déchets: %gkg, Taux d'infestation: %g%%",
			r.Date, r.ClientName, r.ProductName, r.EmployeeCount,
			r.TotalProduction, r.TotalWeightKg, r.WasteKg, r.InfestationRate))
	}
	return strings.Join(lines, "\n")
}

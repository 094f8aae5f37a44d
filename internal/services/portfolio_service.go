package services

import (
	"context"
	"fmt"

	"github.com/benventuring/backend/internal/models"
	"go.uber.org/zap"
)

type portfolioService struct {
	store   DocumentStore
	seeder  *Seeder
	samples []models.PortfolioItem
	logger  *zap.Logger
}

// NewPortfolioService creates a new portfolio service seeded with SamplePortfolio
func NewPortfolioService(store DocumentStore, seeder *Seeder, logger *zap.Logger) *portfolioService {
	return &portfolioService{
		store:   store,
		seeder:  seeder,
		samples: SamplePortfolio(),
		logger:  logger,
	}
}

// GetAll seeds the collection on first use and returns every portfolio item
func (s *portfolioService) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	seeds := make([]Seedable, 0, len(s.samples))
	for _, item := range s.samples {
		item.Normalize()
		seeds = append(seeds, item)
	}
	if err := s.seeder.SeedIfEmpty(ctx, models.CollectionPortfolioItem, seeds); err != nil {
		s.logger.Error("failed to seed portfolio", zap.Error(err))
		return nil, err
	}

	items := make([]models.PortfolioItem, 0)
	if err := s.store.Find(ctx, models.CollectionPortfolioItem, nil, 0, &items); err != nil {
		s.logger.Error("failed to list portfolio", zap.Error(err))
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return items, nil
}

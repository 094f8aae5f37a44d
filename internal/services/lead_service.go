package services

import (
	"context"
	"fmt"

	"github.com/benventuring/backend/internal/models"
	"go.uber.org/zap"
)

type leadsService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewLeadsService creates a new lead service
func NewLeadsService(store DocumentStore, logger *zap.Logger) *leadsService {
	return &leadsService{
		store:  store,
		logger: logger,
	}
}

// Create stores a validated lead as given and returns its generated identifier
func (s *leadsService) Create(ctx context.Context, lead models.Lead) (string, error) {
	id, err := s.store.Insert(ctx, models.CollectionLead, lead)
	if err != nil {
		s.logger.Error("failed to store lead", zap.Error(err))
		return "", fmt.Errorf("failed to create lead: %w", err)
	}
	return id, nil
}

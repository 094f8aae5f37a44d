package services

import (
	"context"
	"fmt"

	"github.com/benventuring/backend/internal/models"
	"go.uber.org/zap"
)

type inquiriesService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewInquiriesService creates a new inquiry service
func NewInquiriesService(store DocumentStore, logger *zap.Logger) *inquiriesService {
	return &inquiriesService{
		store:  store,
		logger: logger,
	}
}

// Create stores a validated inquiry as given and returns its generated identifier
func (s *inquiriesService) Create(ctx context.Context, inquiry models.Inquiry) (string, error) {
	id, err := s.store.Insert(ctx, models.CollectionInquiry, inquiry)
	if err != nil {
		s.logger.Error("failed to store inquiry", zap.Error(err))
		return "", fmt.Errorf("failed to create inquiry: %w", err)
	}
	return id, nil
}

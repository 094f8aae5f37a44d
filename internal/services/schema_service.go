package services

import (
	"github.com/benventuring/backend/internal/models"
	"github.com/benventuring/backend/internal/validation"
)

type schemaService struct {
	descriptors map[string]validation.Descriptor
}

// NewSchemaService creates a service describing every entity kind
func NewSchemaService() *schemaService {
	return &schemaService{
		descriptors: map[string]validation.Descriptor{
			models.CollectionCourse:        validation.Describe(models.Course{}),
			models.CollectionPortfolioItem: validation.Describe(models.PortfolioItem{}),
			models.CollectionInquiry:       validation.Describe(models.Inquiry{}),
			models.CollectionLead:          validation.Describe(models.Lead{}),
		},
	}
}

// GetAll returns the descriptors keyed by collection name
func (s *schemaService) GetAll() map[string]validation.Descriptor {
	return s.descriptors
}

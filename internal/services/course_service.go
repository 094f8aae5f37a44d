package services

import (
	"context"
	"fmt"

	"github.com/benventuring/backend/internal/models"
	"go.uber.org/zap"
)

type coursesService struct {
	store   DocumentStore
	seeder  *Seeder
	samples []models.Course
	logger  *zap.Logger
}

// NewCoursesService creates a new course service seeded with SampleCourses
func NewCoursesService(store DocumentStore, seeder *Seeder, logger *zap.Logger) *coursesService {
	return &coursesService{
		store:   store,
		seeder:  seeder,
		samples: SampleCourses(),
		logger:  logger,
	}
}

// GetAll seeds the collection on first use and returns every course
func (s *coursesService) GetAll(ctx context.Context) ([]models.Course, error) {
	seeds := make([]Seedable, 0, len(s.samples))
	for _, c := range s.samples {
		c.Normalize()
		seeds = append(seeds, c)
	}
	if err := s.seeder.SeedIfEmpty(ctx, models.CollectionCourse, seeds); err != nil {
		s.logger.Error("failed to seed courses", zap.Error(err))
		return nil, err
	}

	courses := make([]models.Course, 0)
	if err := s.store.Find(ctx, models.CollectionCourse, nil, 0, &courses); err != nil {
		s.logger.Error("failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// seedKeyField holds the natural key of every seeded document
const seedKeyField = "id"

// Seedable is a sample document with a natural key
type Seedable interface {
	SeedKey() string
}

// Seeder populates empty collections with sample documents
type Seeder struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(store DocumentStore, logger *zap.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger,
	}
}

// EnsureIndexes creates a unique index on the natural key of each
// collection. SeedIfEmpty relies on it to keep concurrent first-time seeds
// from storing a sample twice.
func (s *Seeder) EnsureIndexes(ctx context.Context, collections ...string) error {
	for _, collection := range collections {
		if err := s.store.EnsureUniqueIndex(ctx, collection, seedKeyField); err != nil {
			return fmt.Errorf("failed to index %s: %w", collection, err)
		}
	}
	return nil
}

// SeedIfEmpty inserts docs, in order, when collection holds no document.
//
// Once any document exists the collection is never seeded again. Each sample
// is written with an upsert on its natural "id"; with the index from
// EnsureIndexes in place, concurrent first-time calls cannot duplicate a
// sample.
func (s *Seeder) SeedIfEmpty(ctx context.Context, collection string, docs []Seedable) error {
	existing := make([]bson.M, 0, 1)
	if err := s.store.Find(ctx, collection, bson.M{}, 1, &existing); err != nil {
		return fmt.Errorf("failed to probe %s: %w", collection, err)
	}
	if len(existing) > 0 {
		return nil
	}

	inserted := 0
	for _, doc := range docs {
		created, err := s.store.InsertIfAbsent(ctx, collection, bson.M{seedKeyField: doc.SeedKey()}, doc)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", collection, err)
		}
		if created {
			inserted++
		}
	}

	s.logger.Info("seeded collection",
		zap.String("collection", collection),
		zap.Int("inserted", inserted),
		zap.Int("candidates", len(docs)),
	)
	return nil
}

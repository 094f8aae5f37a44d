package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PortfolioItem represents a showcased piece of work
type PortfolioItem struct {
	MongoID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ID            string             `json:"id" bson:"id" validate:"required"`
	Title         string             `json:"title" bson:"title" validate:"required"`
	Category      string             `json:"category" bson:"category" validate:"required"`
	Client        *string            `json:"client" bson:"client"`
	Date          *string            `json:"date" bson:"date"`
	Media         []string           `json:"media" bson:"media"`
	CaseStudyText *string            `json:"caseStudyText" bson:"caseStudyText"`
	Metrics       map[string]any     `json:"metrics" bson:"metrics"`
	Slug          string             `json:"slug" bson:"slug" validate:"required"`
}

// SeedKey returns the natural key used to detect an already seeded item
func (p PortfolioItem) SeedKey() string {
	return p.ID
}

// Normalize replaces nil sequences with empty ones
func (p *PortfolioItem) Normalize() {
	if p.Media == nil {
		p.Media = []string{}
	}
}

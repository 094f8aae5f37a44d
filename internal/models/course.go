package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LessonType represents the format of a lesson
type LessonType string

const (
	LessonTypeVideo      LessonType = "video"
	LessonTypeArticle    LessonType = "article"
	LessonTypeQuiz       LessonType = "quiz"
	LessonTypeAssignment LessonType = "assignment"
	LessonTypeLive       LessonType = "live"
	LessonTypeOther      LessonType = "other"
)

// Lesson is a single unit of a module
type Lesson struct {
	ID    string      `json:"id" bson:"id" validate:"required"`
	Title string      `json:"title" bson:"title" validate:"required"`
	Type  *LessonType `json:"type" bson:"type" validate:"omitempty,oneof=video article quiz assignment live other"`
	// Human-readable, e.g. "8m" or "1h 15m"
	Duration *string `json:"duration" bson:"duration"`
}

// Module groups ordered lessons
type Module struct {
	ID      string   `json:"id" bson:"id" validate:"required"`
	Title   string   `json:"title" bson:"title" validate:"required"`
	Lessons []Lesson `json:"lessons" bson:"lessons" validate:"unique=ID,dive"`
}

// Course represents a course document.
//
// ID is the stable human-readable key; MongoID is assigned by the store.
type Course struct {
	MongoID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ID          string             `json:"id" bson:"id" validate:"required"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description *string            `json:"description" bson:"description"`
	Price       *string            `json:"price" bson:"price"`
	Modules     []Module           `json:"modules" bson:"modules" validate:"unique=ID,dive"`
	Instructor  *string            `json:"instructor" bson:"instructor"`
	Slug        string             `json:"slug" bson:"slug" validate:"required"`
	Thumbnail   *string            `json:"thumbnail" bson:"thumbnail"`
}

// SeedKey returns the natural key used to detect an already seeded course
func (c Course) SeedKey() string {
	return c.ID
}

// Normalize replaces nil sequences with empty ones so they are stored as
// empty arrays
func (c *Course) Normalize() {
	if c.Modules == nil {
		c.Modules = []Module{}
	}
	for i := range c.Modules {
		if c.Modules[i].Lessons == nil {
			c.Modules[i].Lessons = []Lesson{}
		}
	}
}

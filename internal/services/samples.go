package services

import "github.com/benventuring/backend/internal/models"

func ptr[T any](v T) *T {
	return &v
}

func lesson(id, title string, lessonType models.LessonType) models.Lesson {
	return models.Lesson{ID: id, Title: title, Type: ptr(lessonType)}
}

// SampleCourses returns the courses seeded into an empty course collection
func SampleCourses() []models.Course {
	return []models.Course{
		{
			ID:          "launch-your-life",
			Title:       "Launch Your Life — AI & Freelance Foundations",
			Description: ptr("Kickstart a freedom-first career with AI, content, and client work."),
			Price:       ptr("USD 199"),
			Slug:        "launch-your-life",
			Instructor:  ptr("Ben"),
			Modules: []models.Module{
				{ID: "m1", Title: "Mindset & Faith", Lessons: []models.Lesson{
					lesson("intro", "Intro", models.LessonTypeVideo),
					lesson("faith-in-business", "Faith in Business", models.LessonTypeArticle),
				}},
				{ID: "m2", Title: "AI Tools & Workflow", Lessons: []models.Lesson{
					lesson("ai-basics", "AI Basics", models.LessonTypeVideo),
					lesson("automation-playbook", "Automation Playbook", models.LessonTypeArticle),
				}},
				{ID: "m3", Title: "Content & Monetization", Lessons: []models.Lesson{
					lesson("ugc-strategy", "UGC Strategy", models.LessonTypeVideo),
					lesson("pricing-services", "Pricing Services", models.LessonTypeArticle),
				}},
			},
		},
	}
}

// SamplePortfolio returns the items seeded into an empty portfolio collection
func SamplePortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			ID:            "p1",
			Title:         "Resort Investment Campaign",
			Category:      "Photography",
			Media:         []string{},
			CaseStudyText: ptr("Campaign increased bookings by 18%"),
			Metrics:       map[string]any{"engagement": "+37% CTR"},
			Slug:          "resort-investment-campaign",
		},
		{
			ID:            "p2",
			Title:         "Aetherflo Demo Site",
			Category:      "Web",
			Media:         []string{},
			CaseStudyText: ptr("Demo bookings via website"),
			Metrics:       map[string]any{"conversion": "demo bookings"},
			Slug:          "aetherflo-demo-site",
		},
	}
}

package models

// Collection names. Each entity kind lives in the collection named by its
// lowercased type name.
const (
	CollectionCourse        = "course"
	CollectionPortfolioItem = "portfolioitem"
	CollectionInquiry       = "inquiry"
	CollectionLead          = "lead"
)

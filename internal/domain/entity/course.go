// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is a purchasable catalog item. Ratings and videos belong
// exclusively to their course and are loaded as associations.
type Course struct {
	ID              uuid.UUID // The surrogate identifier used for foreign keys.
	ExternalID      string    // The externally-assigned catalog id, unique across all courses and supplied by the caller.
	Topic           string    // The course topic shown in the catalog.
	Description     string    // The full course description.
	ActualPrice     float64   // The undiscounted price. Never negative.
	DiscountedPrice float64   // The price after discount. Never negative.
	Images          []string  // Image references for the catalog card and detail page.
	LearnPoints     []string  // Bullet points describing what the course teaches.
	Ratings         []Rating  // The course's ratings, one per user.
	Videos          []Video   // The course's lesson videos, ordered by position.
	CreatedAt       time.Time // Timestamp of when this course was created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the interface for rating-related database operations.
// Ratings are keyed uniquely by (course, user); there is no append path that
// could produce two rows for the same pair.
type RatingRepository interface {
	// Upsert atomically inserts the rating or, when a row for the same
	// (course, user) pair exists, overwrites its score and comment in place.
	// The denormalized username is written only on first insert.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// ListByCourse retrieves all ratings for a course in submission order.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Rating, error)
}

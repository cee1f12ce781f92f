package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput defines the data required to submit a course review.
// The rating range is validated at the HTTP boundary.
type SubmitReviewInput struct {
	CourseID string // External course id.
	UserID   uuid.UUID
	Rating   float64
	Comment  string
}

// ReviewUsecase defines the interface for review submission.
type ReviewUsecase interface {
	// SubmitReview inserts or overwrites the caller's rating for a course
	// and returns the course's full rating list afterwards.
	SubmitReview(ctx context.Context, input SubmitReviewInput) ([]*entity.Rating, error)
}

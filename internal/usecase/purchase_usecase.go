package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PurchaseUsecase defines the interface for course purchases.
type PurchaseUsecase interface {
	// Purchase records that the user bought the course and returns the
	// updated list of purchased external course ids. Buying the same
	// course twice is a conflict and leaves the list unchanged.
	Purchase(ctx context.Context, userID uuid.UUID, courseID string) ([]string, error)

	// ListPurchasedCourses retrieves the full course rows for the user's
	// purchases, with rating summaries.
	ListPurchasedCourses(ctx context.Context, userID uuid.UUID) ([]*CourseView, error)
}

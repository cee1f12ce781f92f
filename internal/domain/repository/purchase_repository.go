package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicatePurchase is returned when the user already purchased the course.
var ErrDuplicatePurchase = errors.New("course already purchased")

// PurchaseRepository defines the interface for purchase-related database
// operations. The (user, course) pair is unique at the storage layer, which
// makes purchasing idempotent without a read-check-write cycle.
type PurchaseRepository interface {
	// Create persists a purchase. A repeated purchase of the same course
	// returns ErrDuplicatePurchase and leaves the stored set unchanged.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListCourseIDs retrieves the external course ids the user has purchased,
	// oldest purchase first.
	ListCourseIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

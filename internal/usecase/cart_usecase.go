package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CartItemView pairs a staged course with the time it was added.
type CartItemView struct {
	Course  *CourseView
	AddedAt time.Time
}

// CartOutput returns the user's cart contents with price totals over the
// staged courses.
type CartOutput struct {
	Items                []*CartItemView
	TotalActualPrice     float64
	TotalDiscountedPrice float64
}

// CartUsecase defines the interface for the server-side shopping cart.
type CartUsecase interface {
	// AddToCart stages a course for purchase. A course already in the cart
	// is a conflict.
	AddToCart(ctx context.Context, userID uuid.UUID, courseID string) error

	// RemoveFromCart takes a course out of the cart.
	RemoveFromCart(ctx context.Context, userID uuid.UUID, courseID string) error

	// ClearCart empties the cart. Clearing an empty cart succeeds.
	ClearCart(ctx context.Context, userID uuid.UUID) error

	// GetCart retrieves the cart contents with price totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)
}

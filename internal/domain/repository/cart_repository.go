package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrDuplicateCartItem is returned when the course is already in the cart.
	ErrDuplicateCartItem = errors.New("course already in cart")
	// ErrCartItemNotFound is returned when the course is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// Add stages a course in the user's cart.
	Add(ctx context.Context, item *entity.CartItem) error

	// Remove takes a course out of the user's cart.
	Remove(ctx context.Context, userID uuid.UUID, courseID string) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error

	// ListByUser retrieves the user's cart items, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
}

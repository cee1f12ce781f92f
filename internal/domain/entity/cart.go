// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a course staged for purchase in a user's cart. The cart is
// owned by the user aggregate; a course appears in a cart at most once.
type CartItem struct {
	ID       uuid.UUID // The surrogate identifier for the cart row.
	UserID   uuid.UUID // The cart owner.
	CourseID string    // Weak reference to the course by its external id.
	AddedAt  time.Time // Timestamp of when the course was added to the cart.
}

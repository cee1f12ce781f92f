// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Purchases reference courses by their
// external string id; the user does not own the courses themselves.
type User struct {
	ID           uuid.UUID // The surrogate identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login email, unique across all users.
	PasswordHash string    // The bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Purchase records that a user bought a course. Purchasing is idempotent:
// at most one purchase exists per (user, course) pair.
type Purchase struct {
	ID          uuid.UUID // The surrogate identifier for the purchase row.
	UserID      uuid.UUID // The buyer.
	CourseID    string    // Weak reference to the course by its external id.
	PurchasedAt time.Time // Timestamp of the purchase.
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SigninInput defines the data required for a user to log in.
type SigninInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful signup or signin.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// ProfileOutput returns the account's basic information together with
// summaries of the courses it has purchased.
type ProfileOutput struct {
	User             *entity.User
	PurchasedCourses []*CourseView
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Signin(ctx context.Context, input SigninInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}

package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// NewVideoInput defines one video supplied inline with a new course.
type NewVideoInput struct {
	Title      string
	URL        string
	Thumbnail  string
	Duration   string
	VideoIndex int
	Resources  []string
}

// CreateCourseInput defines the data required to publish a new course.
type CreateCourseInput struct {
	ExternalID      string
	Topic           string
	Description     string
	ActualPrice     float64
	DiscountedPrice float64
	Images          []string
	LearnPoints     []string
	Videos          []NewVideoInput
}

// --- Output DTOs ---

// CourseView pairs a course with the star projection of its ratings.
type CourseView struct {
	Course  *entity.Course
	Summary entity.RatingSummary
}

// FeedbackEntry is one rating projected for display. Blank fields are
// substituted with placeholder text before they reach the client.
type FeedbackEntry struct {
	Username string
	Rating   float64
	Comment  string
}

// FeedbackOutput returns a course's ratings projected for display together
// with the aggregate star summary.
type FeedbackOutput struct {
	Summary entity.RatingSummary
	Entries []FeedbackEntry
}

// CourseUsecase defines the interface for catalog-related business operations.
type CourseUsecase interface {
	// CreateCourse publishes a new course. A duplicate external id is a conflict.
	CreateCourse(ctx context.Context, input CreateCourseInput) (*entity.Course, error)

	// ListCourses retrieves the whole catalog with rating summaries.
	ListCourses(ctx context.Context) ([]*CourseView, error)

	// GetCourse retrieves one course by its external id with its rating summary.
	GetCourse(ctx context.Context, externalID string) (*CourseView, error)

	// GetCourseFeedback projects the course's ratings for display.
	GetCourseFeedback(ctx context.Context, externalID string) (*FeedbackOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

// Domain-specific errors for course persistence.
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrDuplicateCourse is returned when a course with the same external id already exists.
	ErrDuplicateCourse = errors.New("course already exists")
)

// CourseRepository defines the interface for course-related database operations.
type CourseRepository interface {
	// Create persists a new course together with any embedded videos.
	Create(ctx context.Context, course *entity.Course) error

	// FindByExternalID retrieves a course by its external catalog id,
	// loading its ratings and videos.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Course, error)

	// List retrieves the whole catalog with ratings and videos loaded.
	List(ctx context.Context) ([]*entity.Course, error)

	// FindByExternalIDs retrieves the courses matching the given external ids.
	// Missing ids are silently skipped.
	FindByExternalIDs(ctx context.Context, externalIDs []string) ([]*entity.Course, error)
}

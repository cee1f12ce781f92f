package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for video persistence.
var (
	// ErrVideoNotFound is returned when no video matches the given position.
	ErrVideoNotFound = errors.New("video not found")
	// ErrDuplicateVideoIndex is returned when a video with the same position
	// already exists within the course.
	ErrDuplicateVideoIndex = errors.New("video index already taken for course")
)

// VideoRepository defines the interface for video-related database operations.
// Videos are identified by a generated id; the caller-supplied videoIndex is a
// sortable position kept unique per course at insert time, so every
// index-keyed operation below is single-match.
type VideoRepository interface {
	// Add persists a new video for a course.
	Add(ctx context.Context, video *entity.Video) error

	// FindByIndex retrieves the video at the given position within a course.
	FindByIndex(ctx context.Context, courseID uuid.UUID, videoIndex int) (*entity.Video, error)

	// ListByCourse retrieves all videos of a course ordered by position.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Video, error)

	// Update persists the full video row. Callers merge partial fields onto a
	// fetched video before saving.
	Update(ctx context.Context, video *entity.Video) error

	// Remove deletes the video at the given position. Sibling positions are
	// not reindexed.
	Remove(ctx context.Context, courseID uuid.UUID, videoIndex int) error
}

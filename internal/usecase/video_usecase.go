package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AddVideoInput defines the data required to attach a video to a course.
type AddVideoInput struct {
	CourseID   string // External course id.
	Title      string
	URL        string
	Thumbnail  string
	Duration   string
	VideoIndex int
	Resources  []string
}

// UpdateVideoInput defines a partial update of a stored video. Only the
// non-nil patch fields overwrite.
type UpdateVideoInput struct {
	CourseID   string // External course id.
	VideoIndex int
	Patch      entity.VideoPatch
}

// VideoUsecase defines the interface for per-course video management.
type VideoUsecase interface {
	// AddVideo attaches a new video to a course. A taken position is a conflict.
	AddVideo(ctx context.Context, input AddVideoInput) (*entity.Video, error)

	// GetVideo retrieves the video at the given position within a course.
	GetVideo(ctx context.Context, courseID string, videoIndex int) (*entity.Video, error)

	// ListVideos retrieves a course's videos ordered by position.
	ListVideos(ctx context.Context, courseID string) ([]*entity.Video, error)

	// UpdateVideo merges the patch onto the stored video and persists it.
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*entity.Video, error)

	// RemoveVideo deletes the video at the given position.
	RemoveVideo(ctx context.Context, courseID string, videoIndex int) error
}

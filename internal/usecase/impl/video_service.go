package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type videoService struct {
	courseRepo repository.CourseRepository
	videoRepo  repository.VideoRepository
}

// VideoServiceParams holds dependencies for videoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	VideoRepo  repository.VideoRepository
}

// NewVideoService creates a new video management service instance.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		courseRepo: params.CourseRepo,
		videoRepo:  params.VideoRepo,
	}
}

// AddVideo attaches a new video to a course.
func (s *videoService) AddVideo(ctx context.Context, input usecase.AddVideoInput) (*entity.Video, error) {
	courseID, err := s.resolveCourseID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		CourseID:   courseID,
		Title:      input.Title,
		URL:        input.URL,
		Thumbnail:  input.Thumbnail,
		Duration:   input.Duration,
		VideoIndex: input.VideoIndex,
		Resources:  input.Resources,
	}

	if err := s.videoRepo.Add(ctx, video); err != nil {
		if errors.Is(err, repository.ErrDuplicateVideoIndex) {
			return nil, domainerrors.ErrDuplicateVideoIndex
		}

		return nil, errors.Wrap(err, "failed to add video")
	}

	return video, nil
}

// GetVideo retrieves the video at the given position within a course.
func (s *videoService) GetVideo(ctx context.Context, courseID string, videoIndex int) (*entity.Video, error) {
	internalID, err := s.resolveCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.FindByIndex(ctx, internalID, videoIndex)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	return video, nil
}

// ListVideos retrieves a course's videos ordered by position.
func (s *videoService) ListVideos(ctx context.Context, courseID string) ([]*entity.Video, error) {
	internalID, err := s.resolveCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.ListByCourse(ctx, internalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return videos, nil
}

// UpdateVideo merges the patch onto the stored video and persists it.
// Unsupplied fields keep their stored values.
func (s *videoService) UpdateVideo(ctx context.Context, input usecase.UpdateVideoInput) (*entity.Video, error) {
	internalID, err := s.resolveCourseID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.FindByIndex(ctx, internalID, input.VideoIndex)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	input.Patch.Apply(video)

	if err := s.videoRepo.Update(ctx, video); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to update video")
	}

	return video, nil
}

// RemoveVideo deletes the video at the given position.
func (s *videoService) RemoveVideo(ctx context.Context, courseID string, videoIndex int) error {
	internalID, err := s.resolveCourseID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Remove(ctx, internalID, videoIndex); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return domainerrors.ErrVideoNotFound
		}

		return errors.Wrap(err, "failed to remove video")
	}

	return nil
}

// resolveCourseID maps the external catalog id to the surrogate key videos
// are stored under.
func (s *videoService) resolveCourseID(ctx context.Context, externalID string) (uuid.UUID, error) {
	course, err := s.courseRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return uuid.Nil, domainerrors.ErrCourseNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find course")
	}

	return course.ID, nil
}

package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/cache"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB, catalog *cache.Catalog) repository.VideoRepository {
	return &videoRepository{
		db:      db,
		catalog: catalog,
	}
}

// Add persists a new video for a course. The composite unique index on
// (course_id, video_index) rejects a second video at the same position.
func (repo *videoRepository) Add(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVideoIndex
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add video")
	}

	// Update the entity with generated values
	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	evictCourseCaches(ctx, repo.db, repo.catalog, video.CourseID)

	return nil
}

// FindByIndex retrieves the video at the given position within a course.
func (repo *videoRepository) FindByIndex(ctx context.Context, courseID uuid.UUID, videoIndex int) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("course_id = ? AND video_index = ?", courseID, videoIndex).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by index")
	}

	return toVideoDomain(&videoM), nil
}

// ListByCourse retrieves all videos of a course ordered by position.
func (repo *videoRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Video, error) {
	var videoModels []*model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("video_index ASC").
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list videos by course")
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, nil
}

// Update persists the full video row.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":     videoM.Title,
			"url":       videoM.URL,
			"thumbnail": videoM.Thumbnail,
			"duration":  videoM.Duration,
			"resources": videoM.Resources,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	evictCourseCaches(ctx, repo.db, repo.catalog, video.CourseID)

	return nil
}

// Remove deletes the video at the given position. The unique index
// guarantees at most one row matches.
func (repo *videoRepository) Remove(ctx context.Context, courseID uuid.UUID, videoIndex int) error {
	result := repo.db.WithContext(ctx).
		Where("course_id = ? AND video_index = ?", courseID, videoIndex).
		Delete(&model.VideoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	evictCourseCaches(ctx, repo.db, repo.catalog, courseID)

	return nil
}

// toVideoDomain converts a persistence model to a domain entity.
func toVideoDomain(videoM *model.VideoModel) *entity.Video {
	return &entity.Video{
		ID:         videoM.ID,
		CourseID:   videoM.CourseID,
		Title:      videoM.Title,
		URL:        videoM.URL,
		Thumbnail:  videoM.Thumbnail,
		Duration:   videoM.Duration,
		VideoIndex: videoM.VideoIndex,
		Resources:  []string(videoM.Resources),
		CreatedAt:  videoM.CreatedAt,
		UpdatedAt:  videoM.UpdatedAt,
	}
}

// fromVideoDomain converts a domain entity to a persistence model.
func fromVideoDomain(video *entity.Video) *model.VideoModel {
	return &model.VideoModel{
		ID:         video.ID,
		CourseID:   video.CourseID,
		Title:      video.Title,
		URL:        video.URL,
		Thumbnail:  video.Thumbnail,
		Duration:   video.Duration,
		VideoIndex: video.VideoIndex,
		Resources:  datatypes.JSONSlice[string](video.Resources),
	}
}

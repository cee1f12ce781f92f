package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVideoService(t *testing.T) (usecase.VideoUsecase, *mockRepo.MockCourseRepository, *mockRepo.MockVideoRepository) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockVideoRepo := mockRepo.NewMockVideoRepository(t)
	service := NewVideoService(VideoServiceParams{
		CourseRepo: mockCourseRepo,
		VideoRepo:  mockVideoRepo,
	})

	return service, mockCourseRepo, mockVideoRepo
}

func TestVideoService_AddVideo(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.Video")).
		Run(func(_ context.Context, video *entity.Video) {
			assert.Equal(t, courseID, video.CourseID)
			assert.Equal(t, 2, video.VideoIndex)
		}).
		Return(nil)

	video, err := service.AddVideo(ctx, usecase.AddVideoInput{
		CourseID:   "go-101",
		Title:      "Channels",
		URL:        "https://cdn/video-3",
		Duration:   "00:12:00",
		VideoIndex: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Channels", video.Title)
}

func TestVideoService_AddVideo_DuplicateIndex(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.Video")).
		Return(repository.ErrDuplicateVideoIndex)

	video, err := service.AddVideo(ctx, usecase.AddVideoInput{CourseID: "go-101", VideoIndex: 0})
	assert.Nil(t, video)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateVideoIndex)
}

func TestVideoService_AddVideo_CourseNotFound(t *testing.T) {
	service, mockCourseRepo, _ := newVideoService(t)

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "missing").
		Return(nil, repository.ErrCourseNotFound)

	video, err := service.AddVideo(ctx, usecase.AddVideoInput{CourseID: "missing"})
	assert.Nil(t, video)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestVideoService_UpdateVideo_PartialMerge(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()
	courseID := uuid.New()
	stored := &entity.Video{
		ID:         uuid.New(),
		CourseID:   courseID,
		Title:      "Old title",
		URL:        "https://cdn/video-1",
		Thumbnail:  "https://cdn/thumb-1",
		Duration:   "00:10:00",
		VideoIndex: 1,
	}

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		FindByIndex(ctx, courseID, 1).
		Return(stored, nil)

	mockVideoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Video")).
		Return(nil)

	newTitle := "New title"
	video, err := service.UpdateVideo(ctx, usecase.UpdateVideoInput{
		CourseID:   "go-101",
		VideoIndex: 1,
		Patch:      entity.VideoPatch{Title: &newTitle},
	})
	require.NoError(t, err)

	// Only the supplied field changes; the rest keep their stored values.
	assert.Equal(t, "New title", video.Title)
	assert.Equal(t, "https://cdn/video-1", video.URL)
	assert.Equal(t, "00:10:00", video.Duration)
	assert.Equal(t, 1, video.VideoIndex)
}

func TestVideoService_GetVideo_NotFound(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		FindByIndex(ctx, courseID, 7).
		Return(nil, repository.ErrVideoNotFound)

	video, err := service.GetVideo(ctx, "go-101", 7)
	assert.Nil(t, video)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_RemoveVideo(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		Remove(ctx, courseID, 0).
		Return(nil)

	assert.NoError(t, service.RemoveVideo(ctx, "go-101", 0))
}

func TestVideoService_ListVideos(t *testing.T) {
	service, mockCourseRepo, mockVideoRepo := newVideoService(t)

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockVideoRepo.EXPECT().
		ListByCourse(ctx, courseID).
		Return([]*entity.Video{
			{VideoIndex: 0, Title: "Intro"},
			{VideoIndex: 1, Title: "Types"},
		}, nil)

	videos, err := service.ListVideos(ctx, "go-101")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Intro", videos[0].Title)
}

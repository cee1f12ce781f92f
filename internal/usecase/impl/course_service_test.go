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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourseService_CreateCourse(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Return(nil)

	course, err := service.CreateCourse(ctx, usecase.CreateCourseInput{
		ExternalID:      "go-101",
		Topic:           "Go Fundamentals",
		Description:     "An introduction to Go",
		ActualPrice:     99.0,
		DiscountedPrice: 49.0,
		Videos: []usecase.NewVideoInput{
			{Title: "Intro", URL: "https://cdn/video-1", Duration: "00:05:30", VideoIndex: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "go-101", course.ExternalID)
	require.Len(t, course.Videos, 1)
	assert.Equal(t, "Intro", course.Videos[0].Title)
}

func TestCourseService_CreateCourse_DuplicateExternalID(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Return(repository.ErrDuplicateCourse)

	course, err := service.CreateCourse(ctx, usecase.CreateCourseInput{ExternalID: "go-101"})
	assert.Nil(t, course)
	assert.ErrorIs(t, err, domainerrors.ErrCourseAlreadyExists)
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "missing").
		Return(nil, repository.ErrCourseNotFound)

	view, err := service.GetCourse(ctx, "missing")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_ListCourses_Summaries(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()

	courses := []*entity.Course{
		{
			ExternalID: "go-101",
			Ratings: []entity.Rating{
				{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 4},
			},
		},
		{ExternalID: "rust-101"},
	}

	mockCourseRepo.EXPECT().List(ctx).Return(courses, nil)

	views, err := service.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// 4.5 average renders as four full stars plus a half star.
	assert.InDelta(t, 4.5, views[0].Summary.Average, 1e-9)
	assert.Equal(t, 4, views[0].Summary.FullStars)
	assert.True(t, views[0].Summary.HalfStar)
	assert.Equal(t, 0, views[0].Summary.EmptyStars)

	// No ratings renders as five empty stars.
	assert.Zero(t, views[1].Summary.Average)
	assert.Equal(t, 5, views[1].Summary.EmptyStars)
}

func TestCourseService_GetCourseFeedback_Substitutions(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{
			ID:         courseID,
			ExternalID: "go-101",
			Ratings: []entity.Rating{
				{Username: "alice", Rating: 5, Comment: "great course"},
				{Username: "", Rating: 3, Comment: ""},
			},
		}, nil)

	feedback, err := service.GetCourseFeedback(ctx, "go-101")
	require.NoError(t, err)
	require.Len(t, feedback.Entries, 2)

	assert.Equal(t, "alice", feedback.Entries[0].Username)
	assert.Equal(t, "great course", feedback.Entries[0].Comment)
	assert.Equal(t, "Unknown User", feedback.Entries[1].Username)
	assert.Equal(t, "No comment", feedback.Entries[1].Comment)
	assert.InDelta(t, 4.0, feedback.Summary.Average, 1e-9)
}

func TestCourseService_ListCourses_RepositoryError(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCourseService(CourseServiceParams{CourseRepo: mockCourseRepo})

	ctx := context.Background()

	mockCourseRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	views, err := service.ListCourses(ctx)
	assert.Nil(t, views)
	assert.Error(t, err)
}

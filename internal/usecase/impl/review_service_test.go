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

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockCourseRepository, *mockRepo.MockUserRepository, *mockRepo.MockRatingRepository) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRatingRepo := mockRepo.NewMockRatingRepository(t)
	service := NewReviewService(ReviewServiceParams{
		CourseRepo: mockCourseRepo,
		UserRepo:   mockUserRepo,
		RatingRepo: mockRatingRepo,
	})

	return service, mockCourseRepo, mockUserRepo, mockRatingRepo
}

func TestReviewService_SubmitReview(t *testing.T) {
	service, mockCourseRepo, mockUserRepo, mockRatingRepo := newReviewService(t)

	ctx := context.Background()
	courseID := uuid.New()
	userID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: courseID, ExternalID: "go-101"}, nil)

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "alice"}, nil)

	mockRatingRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(_ context.Context, rating *entity.Rating) {
			// The username is snapshotted from the user row.
			assert.Equal(t, "alice", rating.Username)
			assert.Equal(t, courseID, rating.CourseID)
		}).
		Return(nil)

	mockRatingRepo.EXPECT().
		ListByCourse(ctx, courseID).
		Return([]*entity.Rating{
			{CourseID: courseID, UserID: userID, Username: "alice", Rating: 4.5, Comment: "solid"},
		}, nil)

	ratings, err := service.SubmitReview(ctx, usecase.SubmitReviewInput{
		CourseID: "go-101",
		UserID:   userID,
		Rating:   4.5,
		Comment:  "solid",
	})
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "alice", ratings[0].Username)
}

func TestReviewService_SubmitReview_CourseNotFound(t *testing.T) {
	service, mockCourseRepo, _, _ := newReviewService(t)

	ctx := context.Background()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "missing").
		Return(nil, repository.ErrCourseNotFound)

	ratings, err := service.SubmitReview(ctx, usecase.SubmitReviewInput{
		CourseID: "missing",
		UserID:   uuid.New(),
		Rating:   4,
	})
	assert.Nil(t, ratings)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestReviewService_SubmitReview_UserNotFound(t *testing.T) {
	service, mockCourseRepo, mockUserRepo, _ := newReviewService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	ratings, err := service.SubmitReview(ctx, usecase.SubmitReviewInput{
		CourseID: "go-101",
		UserID:   userID,
		Rating:   4,
	})
	assert.Nil(t, ratings)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

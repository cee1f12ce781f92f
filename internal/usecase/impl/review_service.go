package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	UserRepo   repository.UserRepository
	RatingRepo repository.RatingRepository
}

// NewReviewService creates a new review service instance.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		courseRepo: params.CourseRepo,
		userRepo:   params.UserRepo,
		ratingRepo: params.RatingRepo,
	}
}

// SubmitReview inserts or overwrites the caller's rating for a course. The
// username is snapshotted from the user row at submission time and kept
// from the first insert on resubmission. Returns the course's full rating
// list afterwards.
func (s *reviewService) SubmitReview(ctx context.Context, input usecase.SubmitReviewInput) ([]*entity.Rating, error) {
	course, err := s.courseRepo.FindByExternalID(ctx, input.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	rating := &entity.Rating{
		CourseID: course.ID,
		UserID:   user.ID,
		Username: user.Name,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to upsert rating")
	}

	ratings, err := s.ratingRepo.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

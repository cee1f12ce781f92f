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

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	courseRepo   repository.CourseRepository
	userRepo     repository.UserRepository
}

// PurchaseServiceParams holds dependencies for purchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	PurchaseRepo repository.PurchaseRepository
	CourseRepo   repository.CourseRepository
	UserRepo     repository.UserRepository
}

// NewPurchaseService creates a new purchase service instance.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		purchaseRepo: params.PurchaseRepo,
		courseRepo:   params.CourseRepo,
		userRepo:     params.UserRepo,
	}
}

// Purchase records that the user bought the course and returns the updated
// list of purchased external course ids. The storage-level unique pair
// keeps a repeat purchase from changing the list.
func (s *purchaseService) Purchase(ctx context.Context, userID uuid.UUID, courseID string) ([]string, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	course, err := s.courseRepo.FindByExternalID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	purchase := &entity.Purchase{
		UserID:   userID,
		CourseID: course.ExternalID,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			return nil, domainerrors.ErrCourseAlreadyPurchased
		}

		return nil, errors.Wrap(err, "failed to create purchase")
	}

	courseIDs, err := s.purchaseRepo.ListCourseIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return courseIDs, nil
}

// ListPurchasedCourses retrieves the full course rows for the user's
// purchases, with rating summaries.
func (s *purchaseService) ListPurchasedCourses(ctx context.Context, userID uuid.UUID) ([]*usecase.CourseView, error) {
	courseIDs, err := s.purchaseRepo.ListCourseIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	courses, err := s.courseRepo.FindByExternalIDs(ctx, courseIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchased courses")
	}

	views := make([]*usecase.CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}

	return views, nil
}

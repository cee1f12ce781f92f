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

type cartService struct {
	cartRepo   repository.CartRepository
	courseRepo repository.CourseRepository
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo   repository.CartRepository
	CourseRepo repository.CourseRepository
}

// NewCartService creates a new cart service instance.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:   params.CartRepo,
		courseRepo: params.CourseRepo,
	}
}

// AddToCart stages a course for purchase.
func (s *cartService) AddToCart(ctx context.Context, userID uuid.UUID, courseID string) error {
	course, err := s.courseRepo.FindByExternalID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domainerrors.ErrCourseNotFound
		}

		return errors.Wrap(err, "failed to find course")
	}

	item := &entity.CartItem{
		UserID:   userID,
		CourseID: course.ExternalID,
	}

	if err := s.cartRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartItem) {
			return domainerrors.ErrCourseAlreadyInCart
		}

		return errors.Wrap(err, "failed to add cart item")
	}

	return nil
}

// RemoveFromCart takes a course out of the cart.
func (s *cartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, courseID string) error {
	if err := s.cartRepo.Remove(ctx, userID, courseID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart empties the cart. Clearing an empty cart succeeds.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// GetCart retrieves the cart contents with price totals. Cart rows whose
// course has since disappeared from the catalog are skipped rather than
// failing the whole read.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	courseIDs := make([]string, 0, len(items))
	for _, item := range items {
		courseIDs = append(courseIDs, item.CourseID)
	}

	courses, err := s.courseRepo.FindByExternalIDs(ctx, courseIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart courses")
	}

	byExternalID := make(map[string]*entity.Course, len(courses))
	for _, course := range courses {
		byExternalID[course.ExternalID] = course
	}

	output := &usecase.CartOutput{
		Items: make([]*usecase.CartItemView, 0, len(items)),
	}
	for _, item := range items {
		course, ok := byExternalID[item.CourseID]
		if !ok {
			continue
		}

		output.Items = append(output.Items, &usecase.CartItemView{
			Course:  newCourseView(course),
			AddedAt: item.AddedAt,
		})
		output.TotalActualPrice += course.ActualPrice
		output.TotalDiscountedPrice += course.DiscountedPrice
	}

	return output, nil
}

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

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockCourseRepository) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:   mockCartRepo,
		CourseRepo: mockCourseRepo,
	})

	return service, mockCartRepo, mockCourseRepo
}

func TestCartService_AddToCart(t *testing.T) {
	service, mockCartRepo, mockCourseRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)
	mockCartRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(_ context.Context, item *entity.CartItem) {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, "go-101", item.CourseID)
		}).
		Return(nil)

	assert.NoError(t, service.AddToCart(ctx, userID, "go-101"))
}

func TestCartService_AddToCart_Duplicate(t *testing.T) {
	service, mockCartRepo, mockCourseRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)
	mockCartRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(repository.ErrDuplicateCartItem)

	err := service.AddToCart(ctx, userID, "go-101")
	assert.ErrorIs(t, err, domainerrors.ErrCourseAlreadyInCart)
}

func TestCartService_RemoveFromCart_NotFound(t *testing.T) {
	service, mockCartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		Remove(ctx, userID, "go-101").
		Return(repository.ErrCartItemNotFound)

	err := service.RemoveFromCart(ctx, userID, "go-101")
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	service, mockCartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	assert.NoError(t, service.ClearCart(ctx, userID))
}

func TestCartService_GetCart_Totals(t *testing.T) {
	service, mockCartRepo, mockCourseRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{
			{UserID: userID, CourseID: "go-101"},
			{UserID: userID, CourseID: "rust-101"},
			{UserID: userID, CourseID: "gone-101"},
		}, nil)
	mockCourseRepo.EXPECT().
		FindByExternalIDs(ctx, []string{"go-101", "rust-101", "gone-101"}).
		Return([]*entity.Course{
			{ExternalID: "go-101", ActualPrice: 100, DiscountedPrice: 50},
			{ExternalID: "rust-101", ActualPrice: 80, DiscountedPrice: 40},
		}, nil)

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)

	// The row whose course vanished from the catalog is skipped.
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 180.0, cart.TotalActualPrice, 1e-9)
	assert.InDelta(t, 90.0, cart.TotalDiscountedPrice, 1e-9)
}

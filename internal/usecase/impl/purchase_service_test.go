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

func newPurchaseService(t *testing.T) (usecase.PurchaseUsecase, *mockRepo.MockPurchaseRepository, *mockRepo.MockCourseRepository, *mockRepo.MockUserRepository) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewPurchaseService(PurchaseServiceParams{
		PurchaseRepo: mockPurchaseRepo,
		CourseRepo:   mockCourseRepo,
		UserRepo:     mockUserRepo,
	})

	return service, mockPurchaseRepo, mockCourseRepo, mockUserRepo
}

func TestPurchaseService_Purchase(t *testing.T) {
	service, mockPurchaseRepo, mockCourseRepo, mockUserRepo := newPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)
	mockPurchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(nil)
	mockPurchaseRepo.EXPECT().
		ListCourseIDs(ctx, userID).
		Return([]string{"rust-101", "go-101"}, nil)

	courseIDs, err := service.Purchase(ctx, userID, "go-101")
	require.NoError(t, err)
	assert.Equal(t, []string{"rust-101", "go-101"}, courseIDs)
}

func TestPurchaseService_Purchase_Duplicate(t *testing.T) {
	service, mockPurchaseRepo, mockCourseRepo, mockUserRepo := newPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "go-101").
		Return(&entity.Course{ID: uuid.New(), ExternalID: "go-101"}, nil)
	mockPurchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(repository.ErrDuplicatePurchase)

	courseIDs, err := service.Purchase(ctx, userID, "go-101")
	assert.Nil(t, courseIDs)
	assert.ErrorIs(t, err, domainerrors.ErrCourseAlreadyPurchased)
}

func TestPurchaseService_Purchase_CourseNotFound(t *testing.T) {
	service, _, mockCourseRepo, mockUserRepo := newPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	mockCourseRepo.EXPECT().
		FindByExternalID(ctx, "missing").
		Return(nil, repository.ErrCourseNotFound)

	courseIDs, err := service.Purchase(ctx, userID, "missing")
	assert.Nil(t, courseIDs)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestPurchaseService_ListPurchasedCourses(t *testing.T) {
	service, mockPurchaseRepo, mockCourseRepo, _ := newPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockPurchaseRepo.EXPECT().
		ListCourseIDs(ctx, userID).
		Return([]string{"go-101", "rust-101"}, nil)
	mockCourseRepo.EXPECT().
		FindByExternalIDs(ctx, []string{"go-101", "rust-101"}).
		Return([]*entity.Course{
			{ExternalID: "go-101", Ratings: []entity.Rating{{Rating: 5}}},
			{ExternalID: "rust-101"},
		}, nil)

	views, err := service.ListPurchasedCourses(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 5, views[0].Summary.FullStars)
}

package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	courseRepo   *mockRepo.MockCourseRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	mocks := userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		courseRepo:   mockRepo.NewMockCourseRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	service := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		PurchaseRepo: mocks.purchaseRepo,
		CourseRepo:   mocks.courseRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
	})

	return service, mocks
}

func TestUserService_Signup(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("Secret123!").Return("hashed", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access", "refresh", nil)

	output, err := service.Signup(ctx, usecase.SignupInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "alice", output.User.Name)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("Secret123!").Return("hashed", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := service.Signup(ctx, usecase.SignupInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Signin(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed"}, nil)
	mocks.hasher.EXPECT().Check("Secret123!", "hashed").Return(true)
	mocks.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	output, err := service.Signin(ctx, usecase.SigninInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Signin_WrongPassword(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	mocks.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := service.Signin(ctx, usecase.SigninInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Signin_UnknownEmail(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// An unknown email reads exactly like a wrong password.
	output, err := service.Signin(ctx, usecase.SigninInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "alice", Email: "alice@example.com"}, nil)
	mocks.purchaseRepo.EXPECT().
		ListCourseIDs(ctx, userID).
		Return([]string{"go-101"}, nil)
	mocks.courseRepo.EXPECT().
		FindByExternalIDs(ctx, []string{"go-101"}).
		Return([]*entity.Course{{ExternalID: "go-101", Topic: "Go Fundamentals"}}, nil)

	profile, err := service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Name)
	require.Len(t, profile.PurchasedCourses, 1)
	assert.Equal(t, "go-101", profile.PurchasedCourses[0].Course.ExternalID)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	profile, err := service.GetProfile(ctx, userID)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

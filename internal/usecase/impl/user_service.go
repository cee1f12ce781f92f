package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	courseRepo   repository.CourseRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	CourseRepo   repository.CourseRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
}

// NewUserService creates a new account service instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		purchaseRepo: params.PurchaseRepo,
		courseRepo:   params.CourseRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
	}
}

// Signup registers a new account and signs the caller in.
func (s *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return s.issueTokens(user)
}

// Signin verifies the credentials and issues fresh tokens. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *userService) Signin(ctx context.Context, input usecase.SigninInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// GetProfile retrieves the account's basic information together with
// summaries of the courses it has purchased.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

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

	return &usecase.ProfileOutput{
		User:             user,
		PurchasedCourses: views,
	}, nil
}

func (s *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

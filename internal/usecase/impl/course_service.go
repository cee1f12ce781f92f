// Package impl contains the concrete implementations of the usecase interfaces.
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

// Placeholder text substituted into feedback projections for blank fields.
const (
	unknownUserPlaceholder = "Unknown User"
	noCommentPlaceholder   = "No comment"
)

type courseService struct {
	courseRepo repository.CourseRepository
}

// CourseServiceParams holds dependencies for courseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
}

// NewCourseService creates a new catalog service instance.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
	}
}

// CreateCourse publishes a new course together with any inline videos.
func (s *courseService) CreateCourse(ctx context.Context, input usecase.CreateCourseInput) (*entity.Course, error) {
	videos := make([]entity.Video, 0, len(input.Videos))
	for _, v := range input.Videos {
		videos = append(videos, entity.Video{
			Title:      v.Title,
			URL:        v.URL,
			Thumbnail:  v.Thumbnail,
			Duration:   v.Duration,
			VideoIndex: v.VideoIndex,
			Resources:  v.Resources,
		})
	}

	course := &entity.Course{
		ExternalID:      input.ExternalID,
		Topic:           input.Topic,
		Description:     input.Description,
		ActualPrice:     input.ActualPrice,
		DiscountedPrice: input.DiscountedPrice,
		Images:          input.Images,
		LearnPoints:     input.LearnPoints,
		Videos:          videos,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourse) {
			return nil, domainerrors.ErrCourseAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create course")
	}

	return course, nil
}

// ListCourses retrieves the whole catalog with rating summaries.
func (s *courseService) ListCourses(ctx context.Context) ([]*usecase.CourseView, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	views := make([]*usecase.CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}

	return views, nil
}

// GetCourse retrieves one course by its external id with its rating summary.
func (s *courseService) GetCourse(ctx context.Context, externalID string) (*usecase.CourseView, error) {
	course, err := s.courseRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	return newCourseView(course), nil
}

// GetCourseFeedback projects the course's ratings for display, substituting
// placeholder text for blank usernames and comments.
func (s *courseService) GetCourseFeedback(ctx context.Context, externalID string) (*usecase.FeedbackOutput, error) {
	course, err := s.courseRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	entries := make([]usecase.FeedbackEntry, 0, len(course.Ratings))
	for _, rating := range course.Ratings {
		entry := usecase.FeedbackEntry{
			Username: rating.Username,
			Rating:   rating.Rating,
			Comment:  rating.Comment,
		}
		if entry.Username == "" {
			entry.Username = unknownUserPlaceholder
		}
		if entry.Comment == "" {
			entry.Comment = noCommentPlaceholder
		}
		entries = append(entries, entry)
	}

	return &usecase.FeedbackOutput{
		Summary: summarizeCourse(course),
		Entries: entries,
	}, nil
}

// newCourseView pairs a course with the star projection of its ratings.
func newCourseView(course *entity.Course) *usecase.CourseView {
	return &usecase.CourseView{
		Course:  course,
		Summary: summarizeCourse(course),
	}
}

func summarizeCourse(course *entity.Course) entity.RatingSummary {
	scores := make([]float64, 0, len(course.Ratings))
	for _, rating := range course.Ratings {
		scores = append(scores, rating.Rating)
	}

	return entity.SummarizeRatings(scores)
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/cache"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface.
// Catalog reads go through the Redis cache-aside layer; every write path
// evicts what it invalidates.
type courseRepository struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB, catalog *cache.Catalog) repository.CourseRepository {
	return &courseRepository{
		db:      db,
		catalog: catalog,
	}
}

// Create persists a new course together with any embedded videos.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCourse
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("course prices must not be negative")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	// Update the entity with generated values
	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt
	for i := range courseM.Videos {
		course.Videos[i].ID = courseM.Videos[i].ID
		course.Videos[i].CourseID = courseM.Videos[i].CourseID
	}

	repo.catalog.EvictList(ctx)

	return nil
}

// FindByExternalID retrieves a course by its external catalog id, loading
// its ratings and videos.
func (repo *courseRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Course, error) {
	if cached, ok := repo.catalog.GetDetail(ctx, externalID); ok {
		return cached, nil
	}

	var courseM model.CourseModel

	if err := repo.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("video_index ASC")
		}).
		Where("external_id = ?", externalID).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by external ID")
	}

	course := toCourseDomain(&courseM)
	repo.catalog.SetDetail(ctx, externalID, course)

	return course, nil
}

// List retrieves the whole catalog with ratings and videos loaded.
func (repo *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	if cached, ok := repo.catalog.GetList(ctx); ok {
		return cached, nil
	}

	var courseModels []*model.CourseModel

	if err := repo.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("video_index ASC")
		}).
		Order("created_at ASC").
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, courseM := range courseModels {
		courses = append(courses, toCourseDomain(courseM))
	}

	repo.catalog.SetList(ctx, courses)

	return courses, nil
}

// FindByExternalIDs retrieves the courses matching the given external ids.
// Missing ids are silently skipped; the result keeps the input order.
func (repo *courseRepository) FindByExternalIDs(ctx context.Context, externalIDs []string) ([]*entity.Course, error) {
	if len(externalIDs) == 0 {
		return []*entity.Course{}, nil
	}

	var courseModels []*model.CourseModel

	if err := repo.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("video_index ASC")
		}).
		Where("external_id IN ?", externalIDs).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find courses by external IDs")
	}

	byExternalID := make(map[string]*entity.Course, len(courseModels))
	for _, courseM := range courseModels {
		byExternalID[courseM.ExternalID] = toCourseDomain(courseM)
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, externalID := range externalIDs {
		if course, ok := byExternalID[externalID]; ok {
			courses = append(courses, course)
		}
	}

	return courses, nil
}

// toCourseDomain converts a persistence model to a domain entity.
func toCourseDomain(courseM *model.CourseModel) *entity.Course {
	ratings := make([]entity.Rating, 0, len(courseM.Ratings))
	for i := range courseM.Ratings {
		ratings = append(ratings, *toRatingDomain(&courseM.Ratings[i]))
	}

	videos := make([]entity.Video, 0, len(courseM.Videos))
	for i := range courseM.Videos {
		videos = append(videos, *toVideoDomain(&courseM.Videos[i]))
	}

	return &entity.Course{
		ID:              courseM.ID,
		ExternalID:      courseM.ExternalID,
		Topic:           courseM.Topic,
		Description:     courseM.Description,
		ActualPrice:     courseM.ActualPrice,
		DiscountedPrice: courseM.DiscountedPrice,
		Images:          []string(courseM.Images),
		LearnPoints:     []string(courseM.LearnPoints),
		Ratings:         ratings,
		Videos:          videos,
		CreatedAt:       courseM.CreatedAt,
		UpdatedAt:       courseM.UpdatedAt,
	}
}

// fromCourseDomain converts a domain entity to a persistence model.
func fromCourseDomain(course *entity.Course) *model.CourseModel {
	videos := make([]model.VideoModel, 0, len(course.Videos))
	for i := range course.Videos {
		videos = append(videos, *fromVideoDomain(&course.Videos[i]))
	}

	return &model.CourseModel{
		ID:              course.ID,
		ExternalID:      course.ExternalID,
		Topic:           course.Topic,
		Description:     course.Description,
		ActualPrice:     course.ActualPrice,
		DiscountedPrice: course.DiscountedPrice,
		Images:          datatypes.JSONSlice[string](course.Images),
		LearnPoints:     datatypes.JSONSlice[string](course.LearnPoints),
		Videos:          videos,
	}
}

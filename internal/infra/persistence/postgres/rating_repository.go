package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/cache"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB, catalog *cache.Catalog) repository.RatingRepository {
	return &ratingRepository{
		db:      db,
		catalog: catalog,
	}
}

// Upsert atomically inserts the rating or overwrites the existing row for
// the same (course, user) pair. The conflict target is the composite unique
// index, so concurrent submissions can never produce two rows and the later
// writer wins. The username snapshot is kept from the first insert.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rating", "comment", "updated_at",
			}),
		}).
		Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourseNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 0 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	evictCourseCaches(ctx, repo.db, repo.catalog, rating.CourseID)

	return nil
}

// ListByCourse retrieves all ratings for a course in submission order.
func (repo *ratingRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by course")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// evictCourseCaches drops the cached detail and listing of the course a
// rating or video write just touched. The external id has to be resolved
// from the surrogate key first; a failed lookup only leaves a stale cache
// entry to age out.
func evictCourseCaches(ctx context.Context, db *gorm.DB, catalog *cache.Catalog, courseID uuid.UUID) {
	var externalID string
	if err := db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Select("external_id").
		Where("id = ?", courseID).
		Scan(&externalID).Error; err != nil || externalID == "" {
		return
	}

	catalog.EvictDetail(ctx, externalID)
	catalog.EvictList(ctx)
}

// toRatingDomain converts a persistence model to a domain entity.
func toRatingDomain(ratingM *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:        ratingM.ID,
		CourseID:  ratingM.CourseID,
		UserID:    ratingM.UserID,
		Username:  ratingM.Username,
		Rating:    ratingM.Rating,
		Comment:   ratingM.Comment,
		CreatedAt: ratingM.CreatedAt,
		UpdatedAt: ratingM.UpdatedAt,
	}
}

// fromRatingDomain converts a domain entity to a persistence model.
func fromRatingDomain(rating *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:       rating.ID,
		CourseID: rating.CourseID,
		UserID:   rating.UserID,
		Username: rating.Username,
		Rating:   rating.Rating,
		Comment:  rating.Comment,
	}
}

package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a purchase. The unique index on (user_id, course_id)
// turns a repeat purchase into a constraint violation, so idempotence holds
// even under concurrent submissions.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.PurchasedAt = purchaseM.CreatedAt

	return nil
}

// ListCourseIDs retrieves the external course ids the user has purchased,
// oldest purchase first.
func (repo *purchaseRepository) ListCourseIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var courseIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("course_id", &courseIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchased course IDs")
	}

	return courseIDs, nil
}

// fromPurchaseDomain converts a domain entity to a persistence model.
func fromPurchaseDomain(purchase *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:       purchase.ID,
		UserID:   purchase.UserID,
		CourseID: purchase.CourseID,
	}
}

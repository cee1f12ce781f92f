package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table. The
// course is referenced by its external string id, mirroring the weak
// reference the user aggregate holds. The composite unique index makes
// repeated purchases a constraint violation rather than a racy read-check.
type PurchaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_user_course"`
	CourseID  string    `gorm:"not null;uniqueIndex:idx_purchases_user_course"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

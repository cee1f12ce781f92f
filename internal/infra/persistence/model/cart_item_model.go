package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// A course can sit in a user's cart at most once.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_course"`
	CourseID  string    `gorm:"not null;uniqueIndex:idx_cart_items_user_course"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'ratings' table. The
// composite unique index on (course_id, user_id) is what makes review
// submission an atomic upsert instead of a read-modify-write of the course.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_course_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_course_user"`
	Username  string    `gorm:"not null"`
	Rating    float64   `gorm:"not null;check:rating >= 0 AND rating <= 5"`
	Comment   string    `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

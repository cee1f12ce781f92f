// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseModel is the GORM-specific struct for the 'courses' table. The
// external catalog id is caller-controlled and unique; the uuid primary key
// is the internal identity used by rating and video foreign keys.
type CourseModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID      string                      `gorm:"not null;uniqueIndex"`
	Topic           string                      `gorm:"not null"`
	Description     string                      `gorm:"not null"`
	ActualPrice     float64                     `gorm:"not null;check:actual_price >= 0"`
	DiscountedPrice float64                     `gorm:"not null;check:discounted_price >= 0"`
	Images          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LearnPoints     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Ratings         []RatingModel               `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Videos          []VideoModel                `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VideoModel is the GORM-specific struct for the 'videos' table. The uuid
// primary key is the stable identity; video_index is a sortable position
// kept unique per course by the composite index, so index-keyed lookups and
// deletes are always single-match.
type VideoModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID   uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_videos_course_position"`
	Title      string                      `gorm:"not null"`
	URL        string                      `gorm:"not null"`
	Thumbnail  string                      `gorm:"not null"`
	Duration   string                      `gorm:"not null"`
	VideoIndex int                         `gorm:"not null;uniqueIndex:idx_videos_course_position"`
	Resources  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

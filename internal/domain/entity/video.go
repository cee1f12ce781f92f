// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an embedded lesson unit within a Course. The generated ID is
// the stable identity; VideoIndex is a caller-supplied sortable position
// that is unique within a course, enforced at the storage layer.
type Video struct {
	ID         uuid.UUID // The stable generated identifier for the video.
	CourseID   uuid.UUID // The course this video belongs to.
	Title      string    // The lesson title.
	URL        string    // The playback URL.
	Thumbnail  string    // The thumbnail image URL.
	Duration   string    // The lesson length formatted as hh:mm:ss.
	VideoIndex int       // Caller-supplied position within the course, unique per course.
	Resources  []string  // Optional supplementary resource URLs.
	CreatedAt  time.Time // Timestamp of when this video was added.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// VideoPatch carries a partial update for a video. Nil fields are left
// untouched on the stored video.
type VideoPatch struct {
	Title     *string  // New title, if supplied.
	URL       *string  // New playback URL, if supplied.
	Thumbnail *string  // New thumbnail URL, if supplied.
	Duration  *string  // New hh:mm:ss duration, if supplied.
	Resources []string // Replacement resource list, if supplied.
}

// Apply merges the patch over the video, overwriting only supplied fields.
func (p VideoPatch) Apply(v *Video) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.URL != nil {
		v.URL = *p.URL
	}
	if p.Thumbnail != nil {
		v.Thumbnail = *p.Thumbnail
	}
	if p.Duration != nil {
		v.Duration = *p.Duration
	}
	if p.Resources != nil {
		v.Resources = p.Resources
	}
}

// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rating is a user's numeric score and optional comment attached to a
// Course. There is at most one rating per (course, user) pair; a
// resubmission overwrites the score and comment in place.
type Rating struct {
	ID        uuid.UUID // The surrogate identifier for the rating row.
	CourseID  uuid.UUID // The course this rating belongs to.
	UserID    uuid.UUID // The user who submitted the rating.
	Username  string    // Denormalized snapshot of the user's name at submission time. Never refreshed.
	Rating    float64   // The numeric score in [0, 5].
	Comment   string    // Optional free-form comment.
	CreatedAt time.Time // Timestamp of the first submission.
	UpdatedAt time.Time // Timestamp of the latest resubmission.
}

// RatingSummary is the star-display projection of a rating list.
type RatingSummary struct {
	Average    float64 // Arithmetic mean of the numeric scores, 0 when there are none.
	FullStars  int     // floor(Average) filled star glyphs.
	HalfStar   bool    // One half star when the fractional remainder is >= 0.5.
	EmptyStars int     // Remaining unfilled slots up to five.
}

// SummarizeRatings derives the star display and numeric average from raw
// scores. Non-finite entries are discarded rather than erroring; an empty
// or all-non-finite input yields an average of 0 and five empty stars.
func SummarizeRatings(scores []float64) RatingSummary {
	var sum float64
	var count int
	for _, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		sum += s
		count++
	}

	if count == 0 {
		return RatingSummary{EmptyStars: 5}
	}

	avg := sum / float64(count)
	full := int(math.Floor(avg))
	// Half star on a fractional remainder of at least 0.5, not round-half-up.
	half := avg-float64(full) >= 0.5

	summary := RatingSummary{
		Average:   avg,
		FullStars: full,
		HalfStar:  half,
	}
	summary.EmptyStars = 5 - summary.FullStars
	if summary.HalfStar {
		summary.EmptyStars--
	}

	return summary
}

package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRatings(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   RatingSummary
	}{
		{
			name:   "empty input",
			scores: nil,
			want:   RatingSummary{Average: 0, FullStars: 0, HalfStar: false, EmptyStars: 5},
		},
		{
			name:   "all non finite",
			scores: []float64{math.NaN(), math.Inf(1)},
			want:   RatingSummary{Average: 0, FullStars: 0, HalfStar: false, EmptyStars: 5},
		},
		{
			name:   "average lands on half star",
			scores: []float64{5, 5, 4, 4},
			want:   RatingSummary{Average: 4.5, FullStars: 4, HalfStar: true, EmptyStars: 0},
		},
		{
			name:   "whole average",
			scores: []float64{3},
			want:   RatingSummary{Average: 3, FullStars: 3, HalfStar: false, EmptyStars: 2},
		},
		{
			name:   "fraction below half rounds down",
			scores: []float64{4, 4, 5},
			want:   RatingSummary{Average: 13.0 / 3.0, FullStars: 4, HalfStar: false, EmptyStars: 1},
		},
		{
			name:   "non finite entries are discarded",
			scores: []float64{math.NaN(), 2, 4},
			want:   RatingSummary{Average: 3, FullStars: 3, HalfStar: false, EmptyStars: 2},
		},
		{
			name:   "perfect score fills all slots",
			scores: []float64{5, 5},
			want:   RatingSummary{Average: 5, FullStars: 5, HalfStar: false, EmptyStars: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeRatings(tt.scores)
			assert.InDelta(t, tt.want.Average, got.Average, 1e-9)
			assert.Equal(t, tt.want.FullStars, got.FullStars)
			assert.Equal(t, tt.want.HalfStar, got.HalfStar)
			assert.Equal(t, tt.want.EmptyStars, got.EmptyStars)
		})
	}
}

func TestVideoPatch_Apply(t *testing.T) {
	title := "Intro"
	video := Video{
		Title:      "Old title",
		URL:        "https://cdn.example.com/v/1.mp4",
		Thumbnail:  "https://cdn.example.com/t/1.png",
		Duration:   "00:12:30",
		VideoIndex: 1,
	}

	VideoPatch{Title: &title}.Apply(&video)

	assert.Equal(t, "Intro", video.Title)
	assert.Equal(t, "https://cdn.example.com/v/1.mp4", video.URL)
	assert.Equal(t, "https://cdn.example.com/t/1.png", video.Thumbnail)
	assert.Equal(t, "00:12:30", video.Duration)
	assert.Equal(t, 1, video.VideoIndex)
}

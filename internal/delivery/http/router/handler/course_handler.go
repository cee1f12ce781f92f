// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
	Logger   *slog.Logger
}

// CourseHandler holds dependencies for catalog-related handlers.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler.
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		logger:   params.Logger,
	}
}

// NewVideoRequest represents one video supplied inline with a new course.
type NewVideoRequest struct {
	Title      string   `json:"title" validate:"required"`
	URL        string   `json:"url" validate:"required"`
	Thumbnail  string   `json:"thumbnail"`
	Duration   string   `json:"duration" validate:"required,hhmmss"`
	VideoIndex int      `json:"video_index" validate:"gte=0"`
	Resources  []string `json:"resources"`
}

// CreateCourseRequest represents the request body for publishing a course
type CreateCourseRequest struct {
	ID              string            `json:"id" validate:"required"`
	Topic           string            `json:"topic" validate:"required"`
	Description     string            `json:"description"`
	ActualPrice     float64           `json:"actual_price" validate:"gte=0"`
	DiscountedPrice float64           `json:"discounted_price" validate:"gte=0"`
	Images          []string          `json:"images"`
	LearnPoints     []string          `json:"learn_points"`
	Videos          []NewVideoRequest `json:"videos" validate:"dive"`
}

// CreateCourse handles publishing a new course.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateCourseInput{
		ExternalID:      req.ID,
		Topic:           req.Topic,
		Description:     req.Description,
		ActualPrice:     req.ActualPrice,
		DiscountedPrice: req.DiscountedPrice,
		Images:          req.Images,
		LearnPoints:     req.LearnPoints,
	}
	for _, v := range req.Videos {
		input.Videos = append(input.Videos, usecase.NewVideoInput{
			Title:      v.Title,
			URL:        v.URL,
			Thumbnail:  v.Thumbnail,
			Duration:   v.Duration,
			VideoIndex: v.VideoIndex,
			Resources:  v.Resources,
		})
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCourseResponse(course, nil), "Course created successfully")
}

// ListCourses handles retrieving the whole catalog.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	views, err := h.courseUC.ListCourses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseViewResponses(views), "Courses retrieved successfully")
}

// GetCourse handles retrieving one course by its id.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	view, err := h.courseUC.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseViewResponse(view), "Course retrieved successfully")
}

// GetCourseFeedback handles retrieving a course's ratings for display.
func (h *CourseHandler) GetCourseFeedback(c echo.Context) error {
	feedback, err := h.courseUC.GetCourseFeedback(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFeedbackResponse(feedback), "Course feedback retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// --- Response DTOs ---

// RatingSummaryResponse is the star projection of a course's ratings.
type RatingSummaryResponse struct {
	Average    float64 `json:"average"`
	FullStars  int     `json:"full_stars"`
	HalfStar   bool    `json:"half_star"`
	EmptyStars int     `json:"empty_stars"`
}

// VideoResponse represents a lesson video in API responses.
type VideoResponse struct {
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Thumbnail  string    `json:"thumbnail"`
	Duration   string    `json:"duration"`
	VideoIndex int       `json:"video_index"`
	Resources  []string  `json:"resources"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CourseResponse represents a course in API responses. The id field is the
// externally-assigned catalog id.
type CourseResponse struct {
	ID              string                 `json:"id"`
	Topic           string                 `json:"topic"`
	Description     string                 `json:"description"`
	ActualPrice     float64                `json:"actual_price"`
	DiscountedPrice float64                `json:"discounted_price"`
	Images          []string               `json:"images"`
	LearnPoints     []string               `json:"learn_points"`
	Videos          []VideoResponse        `json:"videos,omitempty"`
	Rating          *RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// FeedbackEntryResponse is one rating projected for display.
type FeedbackEntryResponse struct {
	Username string  `json:"username"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
}

// FeedbackResponse returns a course's feedback with the star summary.
type FeedbackResponse struct {
	Summary  RatingSummaryResponse   `json:"summary"`
	Feedback []FeedbackEntryResponse `json:"feedback"`
}

func toRatingSummaryResponse(s entity.RatingSummary) RatingSummaryResponse {
	return RatingSummaryResponse{
		Average:    s.Average,
		FullStars:  s.FullStars,
		HalfStar:   s.HalfStar,
		EmptyStars: s.EmptyStars,
	}
}

func toCourseResponse(course *entity.Course, summary *entity.RatingSummary) CourseResponse {
	resp := CourseResponse{
		ID:              course.ExternalID,
		Topic:           course.Topic,
		Description:     course.Description,
		ActualPrice:     course.ActualPrice,
		DiscountedPrice: course.DiscountedPrice,
		Images:          course.Images,
		LearnPoints:     course.LearnPoints,
		CreatedAt:       course.CreatedAt,
		UpdatedAt:       course.UpdatedAt,
	}
	for i := range course.Videos {
		resp.Videos = append(resp.Videos, toVideoResponse(&course.Videos[i]))
	}
	if summary != nil {
		s := toRatingSummaryResponse(*summary)
		resp.Rating = &s
	}

	return resp
}

func toCourseViewResponse(view *usecase.CourseView) CourseResponse {
	return toCourseResponse(view.Course, &view.Summary)
}

func toCourseViewResponses(views []*usecase.CourseView) []CourseResponse {
	resp := make([]CourseResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, toCourseViewResponse(view))
	}

	return resp
}

func toVideoResponse(v *entity.Video) VideoResponse {
	return VideoResponse{
		Title:      v.Title,
		URL:        v.URL,
		Thumbnail:  v.Thumbnail,
		Duration:   v.Duration,
		VideoIndex: v.VideoIndex,
		Resources:  v.Resources,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toFeedbackResponse(f *usecase.FeedbackOutput) FeedbackResponse {
	resp := FeedbackResponse{
		Summary:  toRatingSummaryResponse(f.Summary),
		Feedback: make([]FeedbackEntryResponse, 0, len(f.Entries)),
	}
	for _, e := range f.Entries {
		resp.Feedback = append(resp.Feedback, FeedbackEntryResponse{
			Username: e.Username,
			Rating:   e.Rating,
			Comment:  e.Comment,
		})
	}

	return resp
}

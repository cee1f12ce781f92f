package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review submission.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the request body for submitting a review
type SubmitReviewRequest struct {
	CourseID string  `json:"course_id" validate:"required"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment  string  `json:"comment"`
}

// SubmitReview handles submitting or overwriting the caller's course review.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ratings, err := h.reviewUC.SubmitReview(c.Request().Context(), usecase.SubmitReviewInput{
		CourseID: req.CourseID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRatingResponses(ratings), "Review submitted successfully")
}

// RatingResponse represents a stored rating in API responses.
type RatingResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRatingResponses(ratings []*entity.Rating) []RatingResponse {
	resp := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		resp = append(resp, RatingResponse{
			UserID:    r.UserID.String(),
			Username:  r.Username,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return resp
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Logger  *slog.Logger
}

// VideoHandler holds dependencies for per-course video management.
type VideoHandler struct {
	videoUC usecase.VideoUsecase
	logger  *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler.
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		logger:  params.Logger,
	}
}

// AddVideoRequest represents the request body for attaching a video
type AddVideoRequest struct {
	Title      string   `json:"title" validate:"required"`
	URL        string   `json:"url" validate:"required"`
	Thumbnail  string   `json:"thumbnail"`
	Duration   string   `json:"duration" validate:"required,hhmmss"`
	VideoIndex int      `json:"video_index" validate:"gte=0"`
	Resources  []string `json:"resources"`
}

// UpdateVideoRequest represents a partial video update. Absent fields leave
// the stored values untouched.
type UpdateVideoRequest struct {
	Title     *string  `json:"title"`
	URL       *string  `json:"url"`
	Thumbnail *string  `json:"thumbnail"`
	Duration  *string  `json:"duration" validate:"omitempty,hhmmss"`
	Resources []string `json:"resources"`
}

// AddVideo handles attaching a new video to a course.
func (h *VideoHandler) AddVideo(c echo.Context) error {
	var req AddVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid video input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	video, err := h.videoUC.AddVideo(c.Request().Context(), usecase.AddVideoInput{
		CourseID:   c.Param("id"),
		Title:      req.Title,
		URL:        req.URL,
		Thumbnail:  req.Thumbnail,
		Duration:   req.Duration,
		VideoIndex: req.VideoIndex,
		Resources:  req.Resources,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toVideoResponse(video), "Video added successfully")
}

// GetVideo handles retrieving the video at a position within a course.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	videoIndex, err := strconv.Atoi(c.Param("videoIndex"))
	if err != nil || videoIndex < 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid video index")
	}

	video, err := h.videoUC.GetVideo(c.Request().Context(), c.Param("id"), videoIndex)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVideoResponse(video), "Video retrieved successfully")
}

// ListVideos handles retrieving a course's videos ordered by position.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	videos, err := h.videoUC.ListVideos(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVideoResponses(videos), "Videos retrieved successfully")
}

// UpdateVideo handles merging a partial update onto a stored video.
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	videoIndex, err := strconv.Atoi(c.Param("videoIndex"))
	if err != nil || videoIndex < 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid video index")
	}

	var req UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid video input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	video, err := h.videoUC.UpdateVideo(c.Request().Context(), usecase.UpdateVideoInput{
		CourseID:   c.Param("id"),
		VideoIndex: videoIndex,
		Patch: entity.VideoPatch{
			Title:     req.Title,
			URL:       req.URL,
			Thumbnail: req.Thumbnail,
			Duration:  req.Duration,
			Resources: req.Resources,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVideoResponse(video), "Video updated successfully")
}

// RemoveVideo handles deleting the video at a position within a course.
func (h *VideoHandler) RemoveVideo(c echo.Context) error {
	videoIndex, err := strconv.Atoi(c.Param("videoIndex"))
	if err != nil || videoIndex < 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid video index")
	}

	if err := h.videoUC.RemoveVideo(c.Request().Context(), c.Param("id"), videoIndex); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Video removed successfully"}, "Video removed successfully")
}

func toVideoResponses(videos []*entity.Video) []VideoResponse {
	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}

	return resp
}

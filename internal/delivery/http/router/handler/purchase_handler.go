package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler holds dependencies for purchase-related handlers.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler.
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// PurchaseRequest represents the request body for buying a course
type PurchaseRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// PurchaseResponse returns the updated list of purchased course ids.
type PurchaseResponse struct {
	PurchasedCourses []string `json:"purchased_courses"`
}

// Purchase handles recording a course purchase.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	courseIDs, err := h.purchaseUC.Purchase(c.Request().Context(), userID, req.CourseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PurchaseResponse{PurchasedCourses: courseIDs}, "Course purchased successfully")
}

// ListPurchasedCourses handles retrieving the caller's purchased courses.
func (h *PurchaseHandler) ListPurchasedCourses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	views, err := h.purchaseUC.ListPurchasedCourses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseViewResponses(views), "Purchased courses retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping-cart handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for staging a course
type AddToCartRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// AddToCart handles staging a course in the caller's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.cartUC.AddToCart(c.Request().Context(), userID, req.CourseID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Course added to cart"}, "Course added to cart")
}

// RemoveFromCart handles taking a course out of the caller's cart.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), userID, c.Param("courseId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Course removed from cart"}, "Course removed from cart")
}

// ClearCart handles emptying the caller's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared")
}

// GetCart handles retrieving the caller's cart with price totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Cart retrieved successfully")
}

// --- Response DTOs ---

// CartItemResponse pairs a staged course with the time it was added.
type CartItemResponse struct {
	Course  CourseResponse `json:"course"`
	AddedAt time.Time      `json:"added_at"`
}

// CartResponse returns the cart contents with price totals.
type CartResponse struct {
	Items                []CartItemResponse `json:"items"`
	TotalActualPrice     float64            `json:"total_actual_price"`
	TotalDiscountedPrice float64            `json:"total_discounted_price"`
}

func toCartResponse(cart *usecase.CartOutput) CartResponse {
	resp := CartResponse{
		Items:                make([]CartItemResponse, 0, len(cart.Items)),
		TotalActualPrice:     cart.TotalActualPrice,
		TotalDiscountedPrice: cart.TotalDiscountedPrice,
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			Course:  toCourseViewResponse(item.Course),
			AddedAt: item.AddedAt,
		})
	}

	return resp
}

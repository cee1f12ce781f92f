// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CourseHandler   *handler.CourseHandler
	ReviewHandler   *handler.ReviewHandler
	VideoHandler    *handler.VideoHandler
	PurchaseHandler *handler.PurchaseHandler
	CartHandler     *handler.CartHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	courseHandler   *handler.CourseHandler
	reviewHandler   *handler.ReviewHandler
	videoHandler    *handler.VideoHandler
	purchaseHandler *handler.PurchaseHandler
	cartHandler     *handler.CartHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		courseHandler:   params.CourseHandler,
		reviewHandler:   params.ReviewHandler,
		videoHandler:    params.VideoHandler,
		purchaseHandler: params.PurchaseHandler,
		cartHandler:     params.CartHandler,
		chatHandler:     params.ChatHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/signin", r.userHandler.Signin)
	e.GET("/profile/:userId", r.userHandler.GetProfile)

	// Catalog routes
	e.POST("/courses", r.courseHandler.CreateCourse)
	e.GET("/courses", r.courseHandler.ListCourses)
	e.GET("/courses/:id", r.courseHandler.GetCourse)
	e.GET("/courses/:courseId/feedback", r.courseHandler.GetCourseFeedback)
	e.POST("/courses/review", r.reviewHandler.SubmitReview, r.authMiddleware.Authenticate)

	// Video routes
	e.POST("/course/:id/video", r.videoHandler.AddVideo)
	e.GET("/course/:id/video/:videoIndex", r.videoHandler.GetVideo)
	e.GET("/course/:id/videos", r.videoHandler.ListVideos)
	e.PUT("/courses/:id/video/:videoIndex", r.videoHandler.UpdateVideo)
	e.DELETE("/course/:id/video/:videoIndex", r.videoHandler.RemoveVideo)

	// Purchase routes that require authentication
	e.POST("/purchase", r.purchaseHandler.Purchase, r.authMiddleware.Authenticate)
	e.GET("/purchased-courses", r.purchaseHandler.ListPurchasedCourses, r.authMiddleware.Authenticate)

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.DELETE("/items/:courseId", r.cartHandler.RemoveFromCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Chat assistant relay
	e.POST("/chat", r.chatHandler.Chat)
}

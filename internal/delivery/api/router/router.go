// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"swirl/internal/delivery/api/middleware"
	"swirl/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	PushTokenHandler    *handler.PushTokenHandler
	CommentHandler      *handler.CommentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimit           *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	pushTokenHandler    *handler.PushTokenHandler
	commentHandler      *handler.CommentHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimit           *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		pushTokenHandler:    params.PushTokenHandler,
		commentHandler:      params.CommentHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimit:           params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Comment threads are readable without signing in
	apiV1.GET("/posts/:id/comments", r.commentHandler.ListComments)
	apiV1.GET("/comments/:id", r.commentHandler.GetComment)
	apiV1.GET("/comments/:id/replies", r.commentHandler.ListReplies)

	// Everything else under /api/v1 requires a user access token
	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	notificationsGroup := authed.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications, r.rateLimit.Read)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount, r.rateLimit.Read)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead, r.rateLimit.MarkRead)

		// Device token routes
		notificationsGroup.POST("/push-tokens", r.pushTokenHandler.RegisterToken)
		notificationsGroup.GET("/push-tokens", r.pushTokenHandler.ListTokens, r.rateLimit.Read)
		notificationsGroup.DELETE("/push-tokens/:token", r.pushTokenHandler.DeactivateToken)
	}

	authed.POST("/posts/:id/comments", r.commentHandler.CreateComment)

	commentsGroup := authed.Group("/comments")
	{
		commentsGroup.POST("/:id/replies", r.commentHandler.CreateReply)
		commentsGroup.PATCH("/:id", r.commentHandler.UpdateComment)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}

	// Notification events come from collaborating services, never from end users
	internal := e.Group("/internal/v1", r.authMiddleware.AuthenticateService)
	internal.POST("/notifications/events", r.notificationHandler.TriggerNotification)
}

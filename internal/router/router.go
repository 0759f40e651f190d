package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/synergysphere/backend/api/handler"
)

type Handlers struct {
	Auth         *apiHandler.AuthHandler
	Project      *apiHandler.ProjectHandler
	Task         *apiHandler.TaskHandler
	Notification *apiHandler.NotificationHandler
	Health       *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))
	r.GET("/api/v1/auth/session", authMiddleware(handlers.Auth.Session))

	// Protected workspace routes
	r.GET("/api/v1/projects", authMiddleware(handlers.Project.List))
	r.POST("/api/v1/projects", authMiddleware(handlers.Project.Create))
	r.GET("/api/v1/projects/{id}", authMiddleware(handlers.Project.Get))
	r.POST("/api/v1/projects/{id}/select", authMiddleware(handlers.Project.Select))
	r.POST("/api/v1/projects/{id}/members", authMiddleware(handlers.Project.AddMember))
	r.GET("/api/v1/projects/{id}/tasks", authMiddleware(handlers.Project.Tasks))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.List))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.PATCH("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Update))

	r.GET("/api/v1/notifications", authMiddleware(handlers.Notification.List))
	r.POST("/api/v1/notifications/{id}/read", authMiddleware(handlers.Notification.MarkRead))

	return r
}

package routes

import (
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/handler"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	todoHandler *handler.TodoHandler,
) {
	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userHandler.RegisterUser)
		userRoutes.GET("/:userId", userHandler.GetUser)
		userRoutes.DELETE("/:userId", userHandler.RemoveUser)
	}

	// Project routes, including membership and nested todo collections
	projectRoutes := router.Group("/projects")
	{
		projectRoutes.POST("", projectHandler.CreateProject)
		projectRoutes.GET("/:projectId", projectHandler.GetProject)
		projectRoutes.PUT("/:projectId", projectHandler.UpdateProject)
		projectRoutes.DELETE("/:projectId", projectHandler.DeleteProject)

		projectRoutes.POST("/:projectId/members", projectHandler.AddMember)
		projectRoutes.DELETE("/:projectId/members/:userId", projectHandler.RemoveMember)

		projectRoutes.POST("/:projectId/todos", todoHandler.CreateTodo)
		projectRoutes.GET("/:projectId/todos", todoHandler.ListProjectTodos)
	}

	// Todo routes
	todoRoutes := router.Group("/todos")
	{
		todoRoutes.GET("/:todoId", todoHandler.GetTodo)
		todoRoutes.PUT("/:todoId", todoHandler.UpdateTodo)
		todoRoutes.POST("/:todoId/complete", todoHandler.CompleteTodo)
		todoRoutes.POST("/:todoId/reopen", todoHandler.ReopenTodo)
		todoRoutes.DELETE("/:todoId", todoHandler.DeleteTodo)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

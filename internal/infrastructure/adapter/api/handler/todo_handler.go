package handler

import (
	"net/http"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUseCase usecase.TodoUseCase
	logger      coreport.Logger
}

// NewTodoHandler creates a new todo handler instance
func NewTodoHandler(
	todoUseCase usecase.TodoUseCase,
	logger coreport.Logger,
) *TodoHandler {
	return &TodoHandler{
		todoUseCase: todoUseCase,
		logger:      logger,
	}
}

// CreateTodo handles the POST /projects/{projectId}/todos endpoint
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.todoUseCase.CreateTodo(c.Request.Context(), usecase.CreateTodoInput{
		ProjectID:   c.Param("projectId"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ActorID:     req.ActorID,
	})
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.NewTodoResponse(res.Value()))
}

// ListProjectTodos handles the GET /projects/{projectId}/todos endpoint
func (h *TodoHandler) ListProjectTodos(c *gin.Context) {
	res := h.todoUseCase.ListProjectTodos(c.Request.Context(), c.Param("projectId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoListResponse(res.Value()))
}

// GetTodo handles the GET /todos/{todoId} endpoint
func (h *TodoHandler) GetTodo(c *gin.Context) {
	res := h.todoUseCase.GetTodo(c.Request.Context(), c.Param("todoId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponse(res.Value()))
}

// UpdateTodo handles the PUT /todos/{todoId} endpoint
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.todoUseCase.UpdateTodo(c.Request.Context(), usecase.UpdateTodoInput{
		TodoID:      c.Param("todoId"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponse(res.Value()))
}

// CompleteTodo handles the POST /todos/{todoId}/complete endpoint
func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	res := h.todoUseCase.CompleteTodo(c.Request.Context(), c.Param("todoId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponse(res.Value()))
}

// ReopenTodo handles the POST /todos/{todoId}/reopen endpoint
func (h *TodoHandler) ReopenTodo(c *gin.Context) {
	res := h.todoUseCase.ReopenTodo(c.Request.Context(), c.Param("todoId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponse(res.Value()))
}

// DeleteTodo handles the DELETE /todos/{todoId} endpoint
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	res := h.todoUseCase.DeleteTodo(c.Request.Context(), c.Param("todoId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterUser handles the POST /users endpoint
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.userUseCase.RegisterUser(c.Request.Context(), req.Email, req.Name)
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(res.Value()))
}

// GetUser handles the GET /users/{userId} endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	res := h.userUseCase.GetUser(c.Request.Context(), c.Param("userId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(res.Value()))
}

// RemoveUser handles the DELETE /users/{userId} endpoint
func (h *UserHandler) RemoveUser(c *gin.Context) {
	res := h.userUseCase.RemoveUser(c.Request.Context(), c.Param("userId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectUseCase usecase.ProjectUseCase
	logger         coreport.Logger
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(
	projectUseCase usecase.ProjectUseCase,
	logger coreport.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

// CreateProject handles the POST /projects endpoint
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.projectUseCase.CreateProject(c.Request.Context(), usecase.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.NewProjectResponse(res.Value()))
}

// GetProject handles the GET /projects/{projectId} endpoint
func (h *ProjectHandler) GetProject(c *gin.Context) {
	res := h.projectUseCase.GetProject(c.Request.Context(), c.Param("projectId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(res.Value()))
}

// UpdateProject handles the PUT /projects/{projectId} endpoint
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.projectUseCase.UpdateProject(c.Request.Context(), usecase.UpdateProjectInput{
		ProjectID:   c.Param("projectId"),
		Name:        req.Name,
		Description: req.Description,
	})
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(res.Value()))
}

// DeleteProject handles the DELETE /projects/{projectId} endpoint
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	res := h.projectUseCase.DeleteProject(c.Request.Context(), c.Param("projectId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember handles the POST /projects/{projectId}/members endpoint
func (h *ProjectHandler) AddMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res := h.projectUseCase.AddMember(c.Request.Context(), c.Param("projectId"), req.UserID, req.Role)
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(res.Value()))
}

// RemoveMember handles the DELETE /projects/{projectId}/members/{userId} endpoint
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	res := h.projectUseCase.RemoveMember(c.Request.Context(), c.Param("projectId"), c.Param("userId"))
	if res.IsErr() {
		respondError(c, res.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(res.Value()))
}

package dto

import (
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
)

// CreateProjectRequest represents the API request for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId" binding:"required"`
}

// UpdateProjectRequest represents the API request for updating a project
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddMemberRequest represents the API request for adding a project member
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=owner editor viewer"`
}

// MemberResponse represents a project membership in API responses
type MemberResponse struct {
	UserID  string    `json:"userId"`
	Role    string    `json:"role"`
	AddedAt time.Time `json:"addedAt"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Members     []MemberResponse `json:"members"`
}

// NewProjectResponse maps a project aggregate to its API representation
func NewProjectResponse(project *entity.Project) ProjectResponse {
	members := make([]MemberResponse, 0, len(project.Members))
	for _, m := range project.Members {
		members = append(members, MemberResponse{
			UserID:  m.UserID,
			Role:    string(m.Role),
			AddedAt: m.AddedAt,
		})
	}

	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
		Members:     members,
	}
}

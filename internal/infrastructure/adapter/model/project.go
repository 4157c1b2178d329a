package model

import (
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
)

// Project represents the storage item for the project row. The member list
// is not embedded here; memberships live in their own table.
type Project struct {
	ID          string    `dynamodbav:"id"`
	Name        string    `dynamodbav:"name"`
	Description string    `dynamodbav:"description,omitempty"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}

// ProjectMember represents the storage item for one membership row, keyed
// by project_id (partition) and user_id (sort).
type ProjectMember struct {
	ProjectID string    `dynamodbav:"project_id"`
	UserID    string    `dynamodbav:"user_id"`
	Role      string    `dynamodbav:"role"`
	AddedAt   time.Time `dynamodbav:"added_at"`
}

// ProjectFromEntity converts a domain project to its storage item
func ProjectFromEntity(project *entity.Project) *Project {
	return &Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToEntity converts the storage item back to a domain project with the
// given member list
func (m *Project) ToEntity(members []entity.ProjectMember) *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Members:     members,
	}
}

// MemberFromEntity converts a domain membership to its storage item
func MemberFromEntity(member entity.ProjectMember) *ProjectMember {
	return &ProjectMember{
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      string(member.Role),
		AddedAt:   member.AddedAt,
	}
}

// ToEntity converts the storage item back to a domain membership
func (m *ProjectMember) ToEntity() entity.ProjectMember {
	return entity.ProjectMember{
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      entity.MemberRole(m.Role),
		AddedAt:   m.AddedAt,
	}
}

package entity

import (
	"strings"
	"time"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
)

const maxProjectNameLength = 100

// Project is the aggregate root for a board of todos. Its member list is a
// child collection stored in a separate table; the repository persists the
// project row and the membership rows as one consistency unit.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Members     []ProjectMember
}

// NewProject creates a project owned by the given user. The creator is
// always the first member, with the owner role.
func NewProject(id, name, description, ownerID string, timeProvider coreport.TimeProvider) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxProjectNameLength {
		return nil, errs.ErrInvalidProjectName
	}

	now := timeProvider.Now()
	return &Project{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Members: []ProjectMember{
			{ProjectID: id, UserID: ownerID, Role: RoleOwner, AddedAt: now},
		},
	}, nil
}

// Rename changes the project name
func (p *Project) Rename(name string, timeProvider coreport.TimeProvider) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxProjectNameLength {
		return errs.ErrInvalidProjectName
	}
	p.Name = name
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Describe replaces the project description
func (p *Project) Describe(description string, timeProvider coreport.TimeProvider) {
	p.Description = description
	p.UpdatedAt = timeProvider.Now()
}

// AddMember adds a user to the project with the given role
func (p *Project) AddMember(userID string, role MemberRole, timeProvider coreport.TimeProvider) error {
	if p.HasMember(userID) {
		return errs.NewMembershipError(p.ID, userID, "user already on member list", errs.ErrDuplicateMember)
	}

	p.Members = append(p.Members, ProjectMember{
		ProjectID: p.ID,
		UserID:    userID,
		Role:      role,
		AddedAt:   timeProvider.Now(),
	})
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// RemoveMember removes a user from the project. Removing the last owner is
// rejected so that every project always has at least one owner.
func (p *Project) RemoveMember(userID string, timeProvider coreport.TimeProvider) error {
	idx := -1
	for i, m := range p.Members {
		if m.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errs.NewMembershipError(p.ID, userID, "user not on member list", errs.ErrMemberNotFound)
	}

	if p.Members[idx].Role == RoleOwner && p.OwnerCount() == 1 {
		return errs.NewMembershipError(p.ID, userID, "removing sole owner", errs.ErrLastOwner)
	}

	p.Members = append(p.Members[:idx], p.Members[idx+1:]...)
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// HasMember reports whether the user belongs to the project
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberRole returns the role of the given user and whether they are a member
func (p *Project) MemberRole(userID string) (MemberRole, bool) {
	for _, m := range p.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// OwnerCount returns the number of members holding the owner role
func (p *Project) OwnerCount() int {
	count := 0
	for _, m := range p.Members {
		if m.Role == RoleOwner {
			count++
		}
	}
	return count
}

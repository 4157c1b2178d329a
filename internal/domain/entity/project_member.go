package entity

import (
	"time"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
)

// MemberRole represents the permission level of a project member
type MemberRole string

const (
	// RoleOwner can manage members and delete the project
	RoleOwner MemberRole = "owner"
	// RoleEditor can create and modify todos
	RoleEditor MemberRole = "editor"
	// RoleViewer has read-only access
	RoleViewer MemberRole = "viewer"
)

// ProjectMember represents one user's membership in a project. Memberships
// are persisted in their own table but written only as part of the Project
// aggregate.
type ProjectMember struct {
	ProjectID string
	UserID    string
	Role      MemberRole
	AddedAt   time.Time
}

// ParseMemberRole validates a raw role value
func ParseMemberRole(raw string) (MemberRole, error) {
	switch MemberRole(raw) {
	case RoleOwner, RoleEditor, RoleViewer:
		return MemberRole(raw), nil
	default:
		return "", errs.ErrInvalidRole
	}
}

// CanEdit reports whether the role allows modifying todos
func (r MemberRole) CanEdit() bool {
	return r == RoleOwner || r == RoleEditor
}

package entity

import (
	"strings"
	"time"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
)

// User represents a registered account
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new user with the given ID, email and display name
func NewUser(id, email, name string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return nil, errs.ErrInvalidEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidName
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename changes the user's display name
func (u *User) Rename(name string, timeProvider coreport.TimeProvider) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.ErrInvalidName
	}
	u.Name = name
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// validEmail performs a minimal sanity check; full address validation is
// delegate to the mail provider at delivery time.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

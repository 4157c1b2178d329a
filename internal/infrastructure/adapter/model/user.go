package model

import (
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
)

// User represents the storage item for users
type User struct {
	ID        string    `dynamodbav:"id"`
	Email     string    `dynamodbav:"email"`
	Name      string    `dynamodbav:"name"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// UserFromEntity converts a domain user to its storage item
func UserFromEntity(user *entity.User) *User {
	return &User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToEntity converts the storage item back to a domain user
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

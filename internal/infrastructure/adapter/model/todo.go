package model

import (
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
)

// Todo represents the storage item for todos
type Todo struct {
	ID          string     `dynamodbav:"id"`
	ProjectID   string     `dynamodbav:"project_id"`
	Title       string     `dynamodbav:"title"`
	Description string     `dynamodbav:"description,omitempty"`
	Status      string     `dynamodbav:"status"`
	DueDate     *time.Time `dynamodbav:"due_date,omitempty"`
	CreatedAt   time.Time  `dynamodbav:"created_at"`
	UpdatedAt   time.Time  `dynamodbav:"updated_at"`
}

// TodoFromEntity converts a domain todo to its storage item
func TodoFromEntity(todo *entity.Todo) *Todo {
	return &Todo{
		ID:          todo.ID,
		ProjectID:   todo.ProjectID,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      string(todo.Status),
		DueDate:     todo.DueDate,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

// ToEntity converts the storage item back to a domain todo
func (m *Todo) ToEntity() *entity.Todo {
	return &entity.Todo{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TodoStatus(m.Status),
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

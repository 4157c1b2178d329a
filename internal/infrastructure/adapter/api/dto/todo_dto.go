package dto

import (
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
)

// CreateTodoRequest represents the API request for creating a todo
type CreateTodoRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	ActorID     string     `json:"actorId" binding:"required"`
}

// UpdateTodoRequest represents the API request for updating a todo
type UpdateTodoRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// TodoResponse represents a todo in API responses
type TodoResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTodoResponse maps a todo entity to its API representation
func NewTodoResponse(todo *entity.Todo) TodoResponse {
	return TodoResponse{
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

// NewTodoListResponse maps a todo slice to its API representation
func NewTodoListResponse(todos []*entity.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, NewTodoResponse(todo))
	}
	return out
}

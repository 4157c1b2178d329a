package repository

import (
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
)

// Tables names the DynamoDB tables backing each aggregate
type Tables struct {
	Todos          string
	Projects       string
	ProjectMembers string
	Users          string
}

// NewUnitOfWorkFactory returns the context factory handed to the runner.
// Each invocation builds a fresh repository bundle bound to the given
// buffer, so every unit of work gets isolated state. The factory performs
// no I/O.
func NewUnitOfWorkFactory(client dynamo.Client, tables Tables, logger coreport.Logger) dynamo.ContextFactory {
	return func(buffer *dynamo.TransactionBuffer) *persistence.UnitOfWork {
		return &persistence.UnitOfWork{
			Todos:    NewTodoRepository(client, tables.Todos, buffer, logger),
			Projects: NewProjectRepository(client, tables.Projects, tables.ProjectMembers, buffer, logger),
			Members:  NewProjectMemberRepository(client, tables.ProjectMembers, logger),
			Users:    NewUserRepository(client, tables.Users, buffer, logger),
		}
	}
}

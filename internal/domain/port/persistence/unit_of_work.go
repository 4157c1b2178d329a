package persistence

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UnitOfWork bundles repository instances that share one pending write
// buffer. Every mutating call on these repositories records a write instead
// of executing it; the runner flushes all recorded writes as a single
// atomic storage transaction, or discards them.
//
// A UnitOfWork is created fresh for each UnitOfWorkRunner.Run invocation
// and must not be retained after the callback returns.
type UnitOfWork struct {
	Todos    TodoRepository
	Projects ProjectRepository
	Members  ProjectMemberRepository
	Users    UserRepository
}

// UnitOfWorkRunner coordinates a unit of work across repositories.
//
// Run opens a fresh write buffer, builds a UnitOfWork bound to it and
// invokes fn. If fn returns a success result, every recorded write is
// committed as one atomic transaction; if fn returns a failure result, the
// buffer is discarded and storage is left untouched. The commit decision
// depends only on the returned result value, never on panics or other
// control flow.
//
// Callbacks that need to surface a value capture it in a closure variable:
//
//	var created *entity.Project
//	res := runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
//		created = project
//		return uow.Projects.Save(ctx, project)
//	})
//
// Possible failures of Run itself:
// - ErrUnexpectedStorage: the atomic commit was rejected by the provider;
//   no write reached storage.
// - any failure returned by fn, propagated untouched after rollback.
type UnitOfWorkRunner interface {
	Run(ctx context.Context, fn func(uow *UnitOfWork) result.Result[result.Void]) result.Result[result.Void]
}

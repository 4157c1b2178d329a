package dynamo

import (
	"context"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// ContextFactory builds the unit-of-work repository bundle bound to a
// freshly opened buffer. It must be pure: no I/O, no retained state.
type ContextFactory func(buffer *TransactionBuffer) *persistence.UnitOfWork

// Runner implements persistence.UnitOfWorkRunner on top of DynamoDB's
// transactional write API. Each Run invocation gets its own buffer and
// repository bundle, so concurrent invocations are fully independent.
type Runner struct {
	client   Client
	factory  ContextFactory
	maxItems int
	logger   coreport.Logger
}

var _ persistence.UnitOfWorkRunner = (*Runner)(nil)

// NewRunner creates a Runner. maxItems caps the operations of one unit of
// work; a non-positive value falls back to DefaultMaxTransactItems.
func NewRunner(client Client, factory ContextFactory, maxItems int, logger coreport.Logger) *Runner {
	if factory == nil {
		panic("dynamo: unit of work context factory cannot be nil")
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxTransactItems
	}
	return &Runner{
		client:   client,
		factory:  factory,
		maxItems: maxItems,
		logger:   logger,
	}
}

// Run executes fn against a fresh unit of work and commits the recorded
// writes if and only if fn returns a success result. Any failure result
// discards the buffer and is propagated untouched; a commit fault also
// leaves storage unchanged, since the transaction is all-or-nothing.
func (r *Runner) Run(ctx context.Context, fn func(uow *persistence.UnitOfWork) result.Result[result.Void]) result.Result[result.Void] {
	buffer := NewTransactionBuffer(r.maxItems)
	uow := r.factory(buffer)

	res := fn(uow)
	if res.IsErr() {
		r.logger.Debug("Unit of work failed, discarding buffered writes", map[string]any{
			"pending_operations": buffer.OperationCount(),
			"error":              res.Error().Error(),
		})
		buffer.Rollback()
		return res
	}

	count := buffer.OperationCount()
	if err := buffer.Commit(ctx, r.client); err != nil {
		r.logger.Error("Unit of work commit rejected by storage", FaultFields(err))
		buffer.Rollback()
		return result.Err[result.Void](err)
	}

	r.logger.Debug("Unit of work committed", map[string]any{
		"operations": count,
	})
	return res
}

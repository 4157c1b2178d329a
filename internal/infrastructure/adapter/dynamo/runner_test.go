package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	"github.com/lucasferrari/taskboard/internal/domain/result"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo/dynamotest"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/logger"
)

// newCaptureRunner builds a runner whose factory exposes each run's fresh
// buffer through the returned pointer, so callbacks can register
// operations without going through a repository.
func newCaptureRunner(client Client, maxItems int) (*Runner, **TransactionBuffer) {
	var current *TransactionBuffer
	runner := NewRunner(client, func(buffer *TransactionBuffer) *persistence.UnitOfWork {
		current = buffer
		return &persistence.UnitOfWork{}
	}, maxItems, logger.NewNoopLogger())
	return runner, &current
}

func newTodoFake() *dynamotest.FakeClient {
	fake := dynamotest.NewFakeClient()
	fake.AddTable("todos", "id")
	return fake
}

func TestNewRunner(t *testing.T) {
	t.Run("Nil factory panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRunner(newTodoFake(), nil, 0, logger.NewNoopLogger())
		})
	})
}

func TestRunnerCommitsOnSuccess(t *testing.T) {
	fake := newTodoFake()
	runner, buffer := newCaptureRunner(fake, 0)

	res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		(*buffer).Register(Put("todos", stringItem("id", "todo-1")))
		(*buffer).Register(Put("todos", stringItem("id", "todo-2")))
		return result.OkVoid()
	})

	require.True(t, res.IsOk())
	assert.Equal(t, 2, fake.ItemCount("todos"))
	assert.Equal(t, 1, fake.TransactCalls)
}

func TestRunnerDiscardsOnFailure(t *testing.T) {
	businessErr := errors.New("cannot remove last owner")
	fake := newTodoFake()
	runner, buffer := newCaptureRunner(fake, 0)

	res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		(*buffer).Register(Put("todos", stringItem("id", "todo-1")))
		return result.Err[result.Void](businessErr)
	})

	require.True(t, res.IsErr())
	assert.Equal(t, businessErr, res.Error(), "failure must be propagated untouched")
	assert.Equal(t, 0, fake.ItemCount("todos"))
	assert.Equal(t, 0, fake.TransactCalls, "storage must never be touched")
}

func TestRunnerCommitFaultLeavesStorageUntouched(t *testing.T) {
	fake := newTodoFake()
	fake.FailNextTransact(errors.New("provisioned throughput exceeded"))
	runner, buffer := newCaptureRunner(fake, 0)

	res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		(*buffer).Register(Put("todos", stringItem("id", "todo-1")))
		return result.OkVoid()
	})

	require.True(t, res.IsErr())
	assert.True(t, errors.Is(res.Error(), errs.ErrUnexpectedStorage))
	assert.Equal(t, 0, fake.ItemCount("todos"))
}

func TestRunnerEmptyUnitOfWork(t *testing.T) {
	fake := newTodoFake()
	runner, _ := newCaptureRunner(fake, 0)

	res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		return result.OkVoid()
	})

	require.True(t, res.IsOk())
	assert.Equal(t, 0, fake.TransactCalls, "nothing registered, nothing submitted")
}

func TestRunnerIsolationBetweenRuns(t *testing.T) {
	fake := newTodoFake()
	runner, buffer := newCaptureRunner(fake, 0)

	var firstBuffer *TransactionBuffer
	res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		firstBuffer = *buffer
		(*buffer).Register(Put("todos", stringItem("id", "todo-1")))
		return result.Err[result.Void](errors.New("abort"))
	})
	require.True(t, res.IsErr())

	res = runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
		assert.NotSame(t, firstBuffer, *buffer, "each run must get a fresh buffer")
		assert.Equal(t, 0, (*buffer).OperationCount(), "operations must not leak between runs")
		(*buffer).Register(Put("todos", stringItem("id", "todo-2")))
		return result.OkVoid()
	})

	require.True(t, res.IsOk())
	assert.Equal(t, 1, fake.ItemCount("todos"))
}

func TestRunnerSequentialRuns(t *testing.T) {
	fake := newTodoFake()
	runner, buffer := newCaptureRunner(fake, 0)

	for _, id := range []string{"todo-1", "todo-2", "todo-3"} {
		res := runner.Run(context.Background(), func(*persistence.UnitOfWork) result.Result[result.Void] {
			(*buffer).Register(Put("todos", stringItem("id", id)))
			return result.OkVoid()
		})
		require.True(t, res.IsOk())
	}

	assert.Equal(t, 3, fake.ItemCount("todos"))
	assert.Equal(t, 3, fake.TransactCalls, "one atomic call per run")
}

// Compile-time check that the SDK client satisfies the port.
var _ Client = (*dynamodb.Client)(nil)

package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
)

// DefaultMaxTransactItems is DynamoDB's hard ceiling on the number of items
// in one TransactWriteItems call.
const DefaultMaxTransactItems = 100

// TransactionBuffer accumulates pending write operations for one logical
// transaction. Nothing is written to storage until Commit, which submits
// every registered operation, in registration order, as a single atomic
// TransactWriteItems call.
//
// A buffer is created fresh per unit-of-work invocation and is not safe for
// concurrent use; each invocation owns its own buffer.
type TransactionBuffer struct {
	ops      []WriteOp
	maxItems int
}

// NewTransactionBuffer creates an empty buffer capped at maxItems
// operations. A non-positive maxItems falls back to the provider ceiling,
// DefaultMaxTransactItems.
func NewTransactionBuffer(maxItems int) *TransactionBuffer {
	if maxItems <= 0 {
		maxItems = DefaultMaxTransactItems
	}
	return &TransactionBuffer{maxItems: maxItems}
}

// Register appends one operation to the buffer. Exceeding the transaction
// size limit is a programming error, not a recoverable fault, so Register
// panics instead of returning an error; the panic surfaces at the exact
// call site that overflowed the transaction.
func (b *TransactionBuffer) Register(op WriteOp) {
	if len(b.ops) >= b.maxItems {
		panic(fmt.Sprintf("dynamo: transaction buffer overflow: %d operations already registered (max %d)",
			len(b.ops), b.maxItems))
	}
	b.ops = append(b.ops, op)
}

// OperationCount returns the number of registered operations
func (b *TransactionBuffer) OperationCount() int {
	return len(b.ops)
}

// MaxItems returns the configured transaction size limit
func (b *TransactionBuffer) MaxItems() int {
	return b.maxItems
}

// Commit submits all registered operations as one atomic transaction
// against client. An empty buffer commits as a no-op. Provider faults are
// wrapped into the generic storage error and returned without retrying;
// retry policy belongs to the caller. On success the buffer is cleared.
func (b *TransactionBuffer) Commit(ctx context.Context, client Client) error {
	if len(b.ops) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, len(b.ops))
	for i, op := range b.ops {
		items[i] = op.transactItem()
	}

	_, err := client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return errs.NewStorageError("transact commit", "", err)
	}

	b.ops = nil
	return nil
}

// Rollback discards all registered operations. Because nothing has been
// written before Commit, this is purely an in-memory reset; no compensating
// writes are needed.
func (b *TransactionBuffer) Rollback() {
	b.ops = nil
}

package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WriteOp describes exactly one pending write: a full-item put or a
// key-only delete. There is no partial-update descriptor; updates are
// modeled as read-then-put of the full item. A WriteOp is owned by the
// buffer it is registered with and must not be mutated afterwards.
type WriteOp struct {
	put    *putOp
	delete *deleteOp
}

type putOp struct {
	table string
	item  map[string]types.AttributeValue
}

type deleteOp struct {
	table string
	key   map[string]types.AttributeValue
}

// Put describes a full-item upsert against the given table
func Put(table string, item map[string]types.AttributeValue) WriteOp {
	return WriteOp{put: &putOp{table: table, item: item}}
}

// Delete describes a key-only deletion against the given table
func Delete(table string, key map[string]types.AttributeValue) WriteOp {
	return WriteOp{delete: &deleteOp{table: table, key: key}}
}

// Table returns the table the operation targets
func (op WriteOp) Table() string {
	if op.put != nil {
		return op.put.table
	}
	return op.delete.table
}

// transactItem translates the descriptor into the provider's wire shape
func (op WriteOp) transactItem() types.TransactWriteItem {
	if op.put != nil {
		return types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(op.put.table),
				Item:      op.put.item,
			},
		}
	}
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(op.delete.table),
			Key:       op.delete.key,
		},
	}
}

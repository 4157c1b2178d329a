package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lucasferrari/taskboard/internal/domain/result"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
)

// applyOps is the dual-mode write path shared by all repositories. With a
// buffer bound, the operations are only recorded; the unit-of-work runner
// submits them later as part of one transaction. Without a buffer, the same
// operations are submitted immediately as a single atomic transaction.
func applyOps(ctx context.Context, client dynamo.Client, buffer *dynamo.TransactionBuffer, ops ...dynamo.WriteOp) result.Result[result.Void] {
	if buffer != nil {
		for _, op := range ops {
			buffer.Register(op)
		}
		return result.OkVoid()
	}

	immediate := dynamo.NewTransactionBuffer(0)
	for _, op := range ops {
		immediate.Register(op)
	}
	if err := immediate.Commit(ctx, client); err != nil {
		return result.Err[result.Void](err)
	}
	return result.OkVoid()
}

// idKey builds the primary key for tables keyed by a single "id" attribute
func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// memberKey builds the composite primary key of the membership table
func memberKey(projectID, userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"project_id": &types.AttributeValueMemberS{Value: projectID},
		"user_id":    &types.AttributeValueMemberS{Value: userID},
	}
}

package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/result"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository against a DynamoDB
// table, with the same dual-mode write path as the other repositories.
type UserRepository struct {
	client dynamo.Client
	table  string
	buffer *dynamo.TransactionBuffer
	logger coreport.Logger
}

// NewUserRepository creates a UserRepository. buffer may be nil.
func NewUserRepository(client dynamo.Client, table string, buffer *dynamo.TransactionBuffer, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		client: client,
		table:  table,
		buffer: buffer,
		logger: logger,
	}
}

// Save upserts the full user item
func (r *UserRepository) Save(ctx context.Context, user *entity.User) result.Result[result.Void] {
	item, err := attributevalue.MarshalMap(model.UserFromEntity(user))
	if err != nil {
		return result.Err[result.Void](errs.NewStorageError("marshal user", r.table, err))
	}

	r.logger.Debug("Saving user", map[string]any{
		"user_id":  user.ID,
		"buffered": r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, dynamo.Put(r.table, item))
}

// Remove deletes the user with the given ID
func (r *UserRepository) Remove(ctx context.Context, id string) result.Result[result.Void] {
	r.logger.Debug("Removing user", map[string]any{
		"user_id":  id,
		"buffered": r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, dynamo.Delete(r.table, idKey(id)))
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id string) result.Result[*entity.User] {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		r.logger.Error("Failed to read user", dynamo.FaultFields(err))
		return result.Err[*entity.User](errs.NewStorageError("get user", r.table, err))
	}
	if len(out.Item) == 0 {
		return result.Err[*entity.User](errs.ErrUserNotFound)
	}

	var item model.User
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return result.Err[*entity.User](errs.NewStorageError("unmarshal user", r.table, err))
	}
	return result.Ok(item.ToEntity())
}

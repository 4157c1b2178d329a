package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/result"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/model"
)

// todoProjectIndex is the GSI that keys todos by their project
const todoProjectIndex = "project_id-index"

// TodoRepository implements persistence.TodoRepository against a DynamoDB
// table. With a buffer bound at construction, mutating calls only record
// their writes; with a nil buffer they execute immediately.
type TodoRepository struct {
	client dynamo.Client
	table  string
	buffer *dynamo.TransactionBuffer
	logger coreport.Logger
}

// NewTodoRepository creates a TodoRepository. buffer may be nil, in which
// case every mutating call is its own single-item transaction.
func NewTodoRepository(client dynamo.Client, table string, buffer *dynamo.TransactionBuffer, logger coreport.Logger) *TodoRepository {
	return &TodoRepository{
		client: client,
		table:  table,
		buffer: buffer,
		logger: logger,
	}
}

// Save upserts the full todo item
func (r *TodoRepository) Save(ctx context.Context, todo *entity.Todo) result.Result[result.Void] {
	item, err := attributevalue.MarshalMap(model.TodoFromEntity(todo))
	if err != nil {
		return result.Err[result.Void](errs.NewStorageError("marshal todo", r.table, err))
	}

	r.logger.Debug("Saving todo", map[string]any{
		"todo_id":  todo.ID,
		"buffered": r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, dynamo.Put(r.table, item))
}

// Remove deletes the todo with the given ID
func (r *TodoRepository) Remove(ctx context.Context, id string) result.Result[result.Void] {
	r.logger.Debug("Removing todo", map[string]any{
		"todo_id":  id,
		"buffered": r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, dynamo.Delete(r.table, idKey(id)))
}

// FindByID retrieves a todo by ID
func (r *TodoRepository) FindByID(ctx context.Context, id string) result.Result[*entity.Todo] {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		r.logger.Error("Failed to read todo", dynamo.FaultFields(err))
		return result.Err[*entity.Todo](errs.NewStorageError("get todo", r.table, err))
	}
	if len(out.Item) == 0 {
		return result.Err[*entity.Todo](errs.ErrTodoNotFound)
	}

	var item model.Todo
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return result.Err[*entity.Todo](errs.NewStorageError("unmarshal todo", r.table, err))
	}
	return result.Ok(item.ToEntity())
}

// FindByProject retrieves all todos of a project via the project index
func (r *TodoRepository) FindByProject(ctx context.Context, projectID string) result.Result[[]*entity.Todo] {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(todoProjectIndex),
		KeyConditionExpression: aws.String("#pid = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		r.logger.Error("Failed to query todos by project", dynamo.FaultFields(err))
		return result.Err[[]*entity.Todo](errs.NewStorageError("query todos", r.table, err))
	}

	todos := make([]*entity.Todo, 0, len(out.Items))
	for _, raw := range out.Items {
		var item model.Todo
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return result.Err[[]*entity.Todo](errs.NewStorageError("unmarshal todo", r.table, err))
		}
		todos = append(todos, item.ToEntity())
	}
	return result.Ok(todos)
}

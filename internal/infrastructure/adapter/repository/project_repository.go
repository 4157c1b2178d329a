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

// ProjectRepository implements persistence.ProjectRepository across two
// tables: the project row and its membership rows. Saving the aggregate
// reconciles both as one logical write unit.
type ProjectRepository struct {
	client       dynamo.Client
	table        string
	membersTable string
	buffer       *dynamo.TransactionBuffer
	members      *ProjectMemberRepository
	logger       coreport.Logger
}

// NewProjectRepository creates a ProjectRepository. buffer may be nil, in
// which case every mutating call is its own atomic transaction.
func NewProjectRepository(client dynamo.Client, table, membersTable string, buffer *dynamo.TransactionBuffer, logger coreport.Logger) *ProjectRepository {
	return &ProjectRepository{
		client:       client,
		table:        table,
		membersTable: membersTable,
		buffer:       buffer,
		members:      NewProjectMemberRepository(client, membersTable, logger),
		logger:       logger,
	}
}

// Save persists the project row together with its membership diff.
//
// The existing-member read happens here, at call time: the buffer holds
// only pending writes, never reads, so diffing against storage cannot be
// deferred. Saving the same project twice inside one unit of work would
// diff against a stale member list and is not supported.
func (r *ProjectRepository) Save(ctx context.Context, project *entity.Project) result.Result[result.Void] {
	existingRes := r.members.FindByProject(ctx, project.ID)
	if existingRes.IsErr() {
		return result.MapErr[[]entity.ProjectMember, result.Void](existingRes)
	}

	item, err := attributevalue.MarshalMap(model.ProjectFromEntity(project))
	if err != nil {
		return result.Err[result.Void](errs.NewStorageError("marshal project", r.table, err))
	}

	ops := []dynamo.WriteOp{dynamo.Put(r.table, item)}

	current := map[string]bool{}
	for _, member := range project.Members {
		current[member.UserID] = true
	}
	for _, existing := range existingRes.Value() {
		if !current[existing.UserID] {
			ops = append(ops, dynamo.Delete(r.membersTable, memberKey(existing.ProjectID, existing.UserID)))
		}
	}

	for _, member := range project.Members {
		memberItem, err := attributevalue.MarshalMap(model.MemberFromEntity(member))
		if err != nil {
			return result.Err[result.Void](errs.NewStorageError("marshal member", r.membersTable, err))
		}
		ops = append(ops, dynamo.Put(r.membersTable, memberItem))
	}

	r.logger.Debug("Saving project aggregate", map[string]any{
		"project_id": project.ID,
		"operations": len(ops),
		"buffered":   r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, ops...)
}

// Remove deletes the project row and every membership row
func (r *ProjectRepository) Remove(ctx context.Context, id string) result.Result[result.Void] {
	existingRes := r.members.FindByProject(ctx, id)
	if existingRes.IsErr() {
		return result.MapErr[[]entity.ProjectMember, result.Void](existingRes)
	}

	ops := []dynamo.WriteOp{dynamo.Delete(r.table, idKey(id))}
	for _, member := range existingRes.Value() {
		ops = append(ops, dynamo.Delete(r.membersTable, memberKey(member.ProjectID, member.UserID)))
	}

	r.logger.Debug("Removing project aggregate", map[string]any{
		"project_id": id,
		"operations": len(ops),
		"buffered":   r.buffer != nil,
	})
	return applyOps(ctx, r.client, r.buffer, ops...)
}

// FindByID retrieves a project with its member list hydrated
func (r *ProjectRepository) FindByID(ctx context.Context, id string) result.Result[*entity.Project] {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		r.logger.Error("Failed to read project", dynamo.FaultFields(err))
		return result.Err[*entity.Project](errs.NewStorageError("get project", r.table, err))
	}
	if len(out.Item) == 0 {
		return result.Err[*entity.Project](errs.ErrProjectNotFound)
	}

	var item model.Project
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return result.Err[*entity.Project](errs.NewStorageError("unmarshal project", r.table, err))
	}

	membersRes := r.members.FindByProject(ctx, id)
	if membersRes.IsErr() {
		return result.MapErr[[]entity.ProjectMember, *entity.Project](membersRes)
	}

	return result.Ok(item.ToEntity(membersRes.Value()))
}

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

// ProjectMemberRepository implements the read-only membership port.
// Membership writes happen through ProjectRepository.Save as part of the
// Project aggregate.
type ProjectMemberRepository struct {
	client dynamo.Client
	table  string
	logger coreport.Logger
}

// NewProjectMemberRepository creates a ProjectMemberRepository
func NewProjectMemberRepository(client dynamo.Client, table string, logger coreport.Logger) *ProjectMemberRepository {
	return &ProjectMemberRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// FindByProject retrieves all memberships of a project
func (r *ProjectMemberRepository) FindByProject(ctx context.Context, projectID string) result.Result[[]entity.ProjectMember] {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("#pid = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		r.logger.Error("Failed to query project members", dynamo.FaultFields(err))
		return result.Err[[]entity.ProjectMember](errs.NewStorageError("query members", r.table, err))
	}

	members := make([]entity.ProjectMember, 0, len(out.Items))
	for _, raw := range out.Items {
		var item model.ProjectMember
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return result.Err[[]entity.ProjectMember](errs.NewStorageError("unmarshal member", r.table, err))
		}
		members = append(members, item.ToEntity())
	}
	return result.Ok(members)
}

package dynamo

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// FaultKind is a coarse classification of provider faults, used for log
// fields only. All faults reach callers as the same generic storage error;
// they are never expected to branch on the provider-specific kind.
type FaultKind string

const (
	FaultConditionFailed     FaultKind = "condition_failed"
	FaultTransactionConflict FaultKind = "transaction_conflict"
	FaultThrottled           FaultKind = "throttled"
	FaultResourceMissing     FaultKind = "resource_missing"
	FaultUnknown             FaultKind = "unknown"
)

// ClassifyFault inspects a DynamoDB error for logging purposes
func ClassifyFault(err error) FaultKind {
	if err == nil {
		return ""
	}

	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return FaultConditionFailed
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "TransactionConflict" {
				return FaultTransactionConflict
			}
		}
		return FaultTransactionConflict
	}

	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return FaultTransactionConflict
	}

	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return FaultThrottled
	}

	var missing *types.ResourceNotFoundException
	if errors.As(err, &missing) {
		return FaultResourceMissing
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return FaultThrottled
	}

	return FaultUnknown
}

// FaultFields builds structured log fields for a provider fault
func FaultFields(err error) map[string]any {
	return map[string]any{
		"fault_kind": string(ClassifyFault(err)),
		"error":      err.Error(),
	}
}

// Package dynamotest provides an in-memory fake of the DynamoDB client
// subset used by the application. It implements enough of GetItem, Query
// and TransactWriteItems to verify atomicity and visibility properties
// without a real endpoint.
package dynamotest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FakeClient is an in-memory DynamoDB stand-in. Tables must be registered
// with their key schema before use. TransactWriteItems applies all
// operations atomically under one lock, or none at all when a failure is
// injected, mirroring the provider's all-or-nothing guarantee.
type FakeClient struct {
	mu     sync.Mutex
	tables map[string]*fakeTable

	// TransactCalls counts TransactWriteItems invocations, including
	// rejected ones.
	TransactCalls int

	transactErr error
}

type fakeTable struct {
	keyAttrs []string
	items    map[string]map[string]types.AttributeValue
}

// NewFakeClient creates an empty fake with no tables
func NewFakeClient() *FakeClient {
	return &FakeClient{tables: map[string]*fakeTable{}}
}

// AddTable registers a table with its key attribute names (partition key,
// optionally followed by a sort key).
func (c *FakeClient) AddTable(name string, keyAttrs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[name] = &fakeTable{
		keyAttrs: keyAttrs,
		items:    map[string]map[string]types.AttributeValue{},
	}
}

// FailNextTransact makes the next TransactWriteItems call return err
// without applying any operation.
func (c *FakeClient) FailNextTransact(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactErr = err
}

// ItemCount returns the number of items stored in a table
func (c *FakeClient) ItemCount(table string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mustTable(table).items)
}

// SeedItem stores an item directly, bypassing the transactional API
func (c *FakeClient) SeedItem(table string, item map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.mustTable(table)
	t.items[t.keyOf(item)] = cloneItem(item)
}

// GetItem implements the DynamoDB GetItem call
func (c *FakeClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.table(params.TableName)
	if err != nil {
		return nil, err
	}

	item, ok := t.items[t.keyOf(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: cloneItem(item)}, nil
}

// Query implements a minimal subset of the DynamoDB Query call: a key
// condition of the form "#attr = :value" with exactly one name and one
// value placeholder. Base-table and index queries are treated alike.
func (c *FakeClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.table(params.TableName)
	if err != nil {
		return nil, err
	}

	if len(params.ExpressionAttributeNames) != 1 || len(params.ExpressionAttributeValues) != 1 {
		return nil, fmt.Errorf("dynamotest: unsupported key condition %q", strOrEmpty(params.KeyConditionExpression))
	}

	var attr string
	for _, name := range params.ExpressionAttributeNames {
		attr = name
	}
	var want types.AttributeValue
	for _, value := range params.ExpressionAttributeValues {
		want = value
	}

	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var matched []map[string]types.AttributeValue
	for _, k := range keys {
		item := t.items[k]
		if avEqual(item[attr], want) {
			matched = append(matched, cloneItem(item))
		}
	}

	return &dynamodb.QueryOutput{
		Items: matched,
		Count: int32(len(matched)),
	}, nil
}

// TransactWriteItems implements the DynamoDB transactional write call.
// All puts and deletes are applied in order under one lock; an injected
// failure rejects the whole batch with zero visible side effects.
func (c *FakeClient) TransactWriteItems(_ context.Context, params *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.TransactCalls++

	if c.transactErr != nil {
		err := c.transactErr
		c.transactErr = nil
		return nil, err
	}

	if len(params.TransactItems) > 100 {
		return nil, errors.New("dynamotest: too many items in transaction")
	}

	// Validate every target table before mutating anything.
	for _, item := range params.TransactItems {
		switch {
		case item.Put != nil:
			if _, err := c.table(item.Put.TableName); err != nil {
				return nil, err
			}
		case item.Delete != nil:
			if _, err := c.table(item.Delete.TableName); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("dynamotest: only Put and Delete transact items are supported")
		}
	}

	for _, item := range params.TransactItems {
		if item.Put != nil {
			t, _ := c.table(item.Put.TableName)
			t.items[t.keyOf(item.Put.Item)] = cloneItem(item.Put.Item)
			continue
		}
		t, _ := c.table(item.Delete.TableName)
		delete(t.items, t.keyOf(item.Delete.Key))
	}

	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (c *FakeClient) table(name *string) (*fakeTable, error) {
	if name == nil {
		return nil, errors.New("dynamotest: missing table name")
	}
	t, ok := c.tables[*name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: name}
	}
	return t, nil
}

func (c *FakeClient) mustTable(name string) *fakeTable {
	t, ok := c.tables[name]
	if !ok {
		panic("dynamotest: unknown table " + name)
	}
	return t
}

func (t *fakeTable) keyOf(attrs map[string]types.AttributeValue) string {
	parts := make([]string, len(t.keyAttrs))
	for i, attr := range t.keyAttrs {
		parts[i] = avString(attrs[attr])
	}
	return strings.Join(parts, "|")
}

func avString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	default:
		return fmt.Sprintf("%v", av)
	}
}

func avEqual(a, b types.AttributeValue) bool {
	if a == nil || b == nil {
		return false
	}
	return avString(a) == avString(b)
}

func cloneItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	clone := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		clone[k] = v
	}
	return clone
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

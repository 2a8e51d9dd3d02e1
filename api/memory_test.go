package api_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/movietable/store"
)

// memoryAPI is an in-memory store.API holding a single table keyed by
// (year, title). Setting err makes every call fail with it.
type memoryAPI struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	calls int
	err   error
}

var _ store.API = (*memoryAPI)(nil)

func newMemoryAPI() *memoryAPI {
	return &memoryAPI{items: make(map[string]map[string]types.AttributeValue)}
}

func itemID(attrs map[string]types.AttributeValue) string {
	var year, title string
	if n, ok := attrs["year"].(*types.AttributeValueMemberN); ok {
		year = n.Value
	}
	if s, ok := attrs["title"].(*types.AttributeValueMemberS); ok {
		title = s.Value
	}
	return year + "#" + title
}

func (m *memoryAPI) sorted(match func(map[string]types.AttributeValue) bool) []map[string]types.AttributeValue {
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []map[string]types.AttributeValue
	for _, id := range ids {
		if match(m.items[id]) {
			out = append(out, m.items[id])
		}
	}
	return out
}

func (m *memoryAPI) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &dynamodb.GetItemOutput{Item: m.items[itemID(params.Key)]}, nil
}

// Query supports the single "title = value" key condition used by the store.
func (m *memoryAPI) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if aws.ToString(params.IndexName) == "" {
		return nil, &types.ResourceNotFoundException{Message: aws.String("index not given")}
	}

	var want string
	for _, v := range params.ExpressionAttributeValues {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			want = s.Value
		}
	}

	items := m.sorted(func(attrs map[string]types.AttributeValue) bool {
		s, ok := attrs["title"].(*types.AttributeValueMemberS)
		return ok && s.Value == want
	})
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (m *memoryAPI) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	items := m.sorted(func(map[string]types.AttributeValue) bool { return true })
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

func (m *memoryAPI) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.items[itemID(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryAPI) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	delete(m.items, itemID(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// seed writes items straight into the table.
func (m *memoryAPI) seed(t *testing.T, items ...store.Item) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		av, err := store.MarshalItem(item)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		m.items[itemID(av)] = av
	}
}

func (m *memoryAPI) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

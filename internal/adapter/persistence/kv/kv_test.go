package kv

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the versioned put contract shared by every substrate.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "customers")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.Put(ctx, "customers", []byte(`[]`), 3)
	assert.ErrorIs(t, err, ErrVersionConflict, "absent key with non-zero expected version")

	v1, err := s.Put(ctx, "customers", []byte(`[{"id":1}]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	_, err = s.Put(ctx, "customers", []byte(`[]`), 0)
	assert.ErrorIs(t, err, ErrVersionConflict, "create over existing key")

	e, found, err := s.Get(ctx, "customers")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":1}]`, string(e.Value))
	assert.Equal(t, int64(1), e.Version)

	v2, err := s.Put(ctx, "customers", []byte(`[{"id":1},{"id":2}]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2)

	_, err = s.Put(ctx, "customers", []byte(`[]`), 1)
	assert.ErrorIs(t, err, ErrVersionConflict, "stale version")

	e, _, err = s.Get(ctx, "customers")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1},{"id":2}]`, string(e.Value))

	_, found, err = s.Get(ctx, "materials")
	require.NoError(t, err)
	assert.False(t, found, "keys are independent")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	buf := []byte(`[1]`)
	_, err := s.Put(ctx, "k", buf, 0)
	require.NoError(t, err)
	buf[1] = '9'

	e, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(e.Value))
}

func TestSQLStore_SQLite(t *testing.T) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()), "migrate is idempotent")
	exerciseStore(t, s)
}

type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	fail  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	key := in.Key["record_key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	key := in.Item["record_key"].(*types.AttributeValueMemberS).Value
	current, exists := f.items[key]

	conflict := &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#k)":
		if exists {
			return nil, conflict
		}
	case "#v = :expected":
		if !exists {
			return nil, conflict
		}
		want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		got := current["version"].(*types.AttributeValueMemberN).Value
		if want != got {
			return nil, conflict
		}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoStore(t *testing.T) {
	exerciseStore(t, NewDynamoStore(newFakeDynamo(), ""))
}

func TestDynamoStore_ItemShape(t *testing.T) {
	fake := newFakeDynamo()
	s := NewDynamoStore(fake, "records")
	_, err := s.Put(context.Background(), "orders", []byte(`[]`), 0)
	require.NoError(t, err)

	item := fake.items["orders"]
	assert.Equal(t, "[]", item["value"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, strconv.Itoa(1), item["version"].(*types.AttributeValueMemberN).Value)
}

func TestDynamoStore_PropagatesClientErrors(t *testing.T) {
	fake := newFakeDynamo()
	fake.fail = errors.New("throttled")
	s := NewDynamoStore(fake, "")

	_, _, err := s.Get(context.Background(), "orders")
	assert.EqualError(t, err, "throttled")
	_, err = s.Put(context.Background(), "orders", []byte(`[]`), 0)
	assert.EqualError(t, err, "throttled")
	assert.NotErrorIs(t, err, ErrVersionConflict)
}

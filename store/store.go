package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/movietable/internal/key"
)

// Store provides single-call DynamoDB operations on the movie table.
type Store struct {
	client API
	config Config
}

// New creates a new Store instance.
func New(client API, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Config returns the store's effective configuration.
func (s *Store) Config() Config {
	return s.config
}

// Get retrieves the item with the given key, returning ErrNotFound if missing.
func (s *Store) Get(ctx context.Context, k key.Key) (Item, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       k.Attributes(),
	})
	if err != nil {
		return Item{}, err
	}
	if result.Item == nil {
		return Item{}, ErrNotFound
	}
	return UnmarshalItem(result.Item)
}

// QueryByTitle returns every item with the given title, across all years.
// No match is an empty slice, not an error.
func (s *Store) QueryByTitle(ctx context.Context, title string) ([]Item, error) {
	keyCond := expression.Key(key.TitleAttr).Equal(expression.Value(title))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.config.TableName),
		IndexName:                 aws.String(s.config.TitleIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, err
	}
	return UnmarshalItems(result.Items)
}

// ScanAll returns the items of one Scan call over the whole table.
func (s *Store) ScanAll(ctx context.Context) ([]Item, error) {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.config.TableName),
	})
	if err != nil {
		return nil, err
	}
	return UnmarshalItems(result.Items)
}

// Put writes the item, replacing any existing item with the same key.
func (s *Store) Put(ctx context.Context, item Item) error {
	av, err := MarshalItem(item)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      av,
	})
	return err
}

// Delete removes the item with the given key. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, k key.Key) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       k.Attributes(),
	})
	return err
}

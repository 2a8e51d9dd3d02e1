package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MarshalItem converts an Item to its DynamoDB attribute form.
func MarshalItem(item Item) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %v", ErrDecode, err)
	}
	return av, nil
}

// UnmarshalItem converts a DynamoDB record back to an Item.
func UnmarshalItem(raw map[string]types.AttributeValue) (Item, error) {
	var item Item
	if raw == nil {
		return item, fmt.Errorf("%w: empty record", ErrDecode)
	}
	if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
		return Item{}, fmt.Errorf("%w: unmarshal: %v", ErrDecode, err)
	}
	return item, nil
}

// UnmarshalItems converts each record independently. The result is never
// nil, so an empty result encodes as an empty JSON array.
func UnmarshalItems(raws []map[string]types.AttributeValue) ([]Item, error) {
	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		item, err := UnmarshalItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

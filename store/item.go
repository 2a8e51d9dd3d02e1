package store

import (
	"strconv"

	"github.com/jacentio/movietable/internal/key"
)

// Item is a single movie record.
type Item struct {
	// Year is the partition key.
	Year int `json:"year" dynamodbav:"year"`

	// Title is the sort key and the title index partition key.
	Title string `json:"title" dynamodbav:"title"`

	// Info is an opaque payload stored and returned untouched.
	Info map[string]any `json:"info,omitempty" dynamodbav:"info,omitempty"`
}

// Key returns the composite key of the item.
func (i Item) Key() key.Key {
	return key.Key{
		Year:  strconv.Itoa(i.Year),
		Title: i.Title,
	}
}

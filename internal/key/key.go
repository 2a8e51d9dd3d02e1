// Package key builds and decodes the movie table's composite primary key.
package key

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// YearAttr is the partition key attribute (number).
	YearAttr = "year"

	// TitleAttr is the sort key attribute (string). It is also the
	// partition key of the title index.
	TitleAttr = "title"
)

// titleReplacer turns "+" and the literal "%20" into a single space.
// Any other percent sequence is left alone.
var titleReplacer = strings.NewReplacer("%20", " ", "+", " ")

// DecodeTitle converts a raw title path parameter into the stored title.
// Only "+" and "%20" are decoded; this is not general URL decoding.
func DecodeTitle(raw string) string {
	return titleReplacer.Replace(raw)
}

// Key is the (year, title) pair that identifies a single movie.
type Key struct {
	// Year is the numeric partition value as text. It is not validated here;
	// DynamoDB rejects malformed numbers.
	Year string

	// Title is the decoded title.
	Title string
}

// FromPath builds a Key from API Gateway path parameters.
// The title is decoded with DecodeTitle.
func FromPath(params map[string]string) Key {
	return Key{
		Year:  params[YearAttr],
		Title: DecodeTitle(params[TitleAttr]),
	}
}

// Attributes returns the key in DynamoDB attribute form.
func (k Key) Attributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		YearAttr:  &types.AttributeValueMemberN{Value: k.Year},
		TitleAttr: &types.AttributeValueMemberS{Value: k.Title},
	}
}

// String returns "<year> <title>".
func (k Key) String() string {
	return k.Year + " " + k.Title
}

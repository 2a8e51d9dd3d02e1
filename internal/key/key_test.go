package key

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// --- DecodeTitle Tests ---

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain", "Braveheart", "Braveheart"},
		{"plus", "Die+Hard", "Die Hard"},
		{"percent20", "Die%20Hard", "Die Hard"},
		{"mixed", "The+Lord%20of+the%20Rings", "The Lord of the Rings"},
		{"repeated plus", "a++b", "a  b"},
		{"other percent sequences untouched", "100%25+Pure%21", "100%25 Pure%21"},
		{"lowercase escape untouched", "a%2fb", "a%2fb"},
		{"partial escape", "50%2", "50%2"},
		{"empty", "", ""},
		{"unicode", "Amélie+(2001)", "Amélie (2001)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DecodeTitle(tt.raw)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDecodeTitle_PlusAndPercent20Agree(t *testing.T) {
	plus := DecodeTitle("Die+Hard")
	pct := DecodeTitle("Die%20Hard")
	if plus != "Die Hard" || pct != "Die Hard" {
		t.Errorf("expected both to decode to 'Die Hard', got %q and %q", plus, pct)
	}
}

func TestDecodeTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Die+Hard",
		"Die%20Hard",
		"%2%200",
		"%%2020",
		"+%20+",
		"already decoded",
		"%252520",
	}

	for _, in := range inputs {
		once := DecodeTitle(in)
		twice := DecodeTitle(once)
		if once != twice {
			t.Errorf("decode not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

// --- FromPath Tests ---

func TestFromPath(t *testing.T) {
	k := FromPath(map[string]string{
		"year":  "1995",
		"title": "Brave+Heart%20II",
	})

	if k.Year != "1995" {
		t.Errorf("expected Year '1995', got %q", k.Year)
	}
	if k.Title != "Brave Heart II" {
		t.Errorf("expected Title 'Brave Heart II', got %q", k.Title)
	}
}

func TestFromPath_YearNotValidated(t *testing.T) {
	k := FromPath(map[string]string{"year": "nineteen", "title": "x"})
	if k.Year != "nineteen" {
		t.Errorf("expected Year passed through as 'nineteen', got %q", k.Year)
	}
}

func TestFromPath_Missing(t *testing.T) {
	k := FromPath(nil)
	if k.Year != "" || k.Title != "" {
		t.Errorf("expected empty key, got %+v", k)
	}
}

// --- Attributes Tests ---

func TestAttributes(t *testing.T) {
	attrs := Key{Year: "2010", Title: "Inception"}.Attributes()

	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}

	year, ok := attrs[YearAttr].(*types.AttributeValueMemberN)
	if !ok {
		t.Fatalf("expected year to be a number attribute, got %T", attrs[YearAttr])
	}
	if year.Value != "2010" {
		t.Errorf("expected year '2010', got %q", year.Value)
	}

	title, ok := attrs[TitleAttr].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected title to be a string attribute, got %T", attrs[TitleAttr])
	}
	if title.Value != "Inception" {
		t.Errorf("expected title 'Inception', got %q", title.Value)
	}
}

func TestString(t *testing.T) {
	k := Key{Year: "1995", Title: "Braveheart"}
	if k.String() != "1995 Braveheart" {
		t.Errorf("expected '1995 Braveheart', got %q", k.String())
	}
}

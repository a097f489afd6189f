package driven

import "github.com/kenkundert/bw-export/internal/core/domain"

// FieldBlockParser parses the inline line-oriented "key: value" block
// syntax accepted by the fields field.
type FieldBlockParser interface {
	// ParseFields parses text into name/value pairs, preserving
	// declaration order. Malformed text fails with a parse error.
	ParseFields(text string) (domain.Pairs, error)
}

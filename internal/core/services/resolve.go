package services

import (
	"context"
	"fmt"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// ValueResolver expands the value expressions embedded in declared
// values while preserving the value's shape.
type ValueResolver struct {
	source driven.AccountSource
}

// NewValueResolver creates a new value resolver.
func NewValueResolver(source driven.AccountSource) *ValueResolver {
	return &ValueResolver{source: source}
}

// Resolve returns value with every leaf string expanded against the
// named account's attributes. Mappings and sequences keep their shape
// and declaration order.
func (r *ValueResolver) Resolve(ctx context.Context, account string, value any) (any, error) {
	switch v := value.(type) {
	case string:
		return r.source.Expand(ctx, account, v)

	case domain.Pairs:
		resolved := make(domain.Pairs, 0, len(v))
		for _, pair := range v {
			rv, err := r.Resolve(ctx, account, pair.Value)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, domain.Pair{Key: pair.Key, Value: rv})
		}
		return resolved, nil

	case []any:
		resolved := make([]any, 0, len(v))
		for _, item := range v {
			rv, err := r.Resolve(ctx, account, item)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, rv)
		}
		return resolved, nil

	default:
		return nil, fmt.Errorf("%w: unsupported value shape %T", domain.ErrInvalidFieldValue, value)
	}
}

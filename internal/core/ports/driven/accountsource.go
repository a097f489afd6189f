package driven

import (
	"context"

	"github.com/kenkundert/bw-export/internal/core/domain"
)

// AccountSource enumerates accounts and expands the value expressions
// embedded in their declared values.
type AccountSource interface {
	// Accounts returns every account in the source store, in the
	// store's stable enumeration order.
	Accounts(ctx context.Context) ([]domain.Account, error)

	// Expand resolves the value-expression placeholders in text
	// against the named account's own attributes. Expansion may
	// perform side-effecting lookups inside the source store.
	Expand(ctx context.Context, account, text string) (string, error)
}

// AccountWatcher is implemented by account sources that can report
// changes to the underlying store.
type AccountWatcher interface {
	// Watch reports changed store paths until ctx is cancelled. The
	// returned channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan string, error)
}

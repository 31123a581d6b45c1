package port

import "context"

// Clock reports the current ledger sequence. Sequences never decrease.
type Clock interface {
	Sequence(ctx context.Context) (uint32, error)
}

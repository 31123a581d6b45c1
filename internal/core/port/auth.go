package port

import (
	"context"

	"crowdfund-ledger/internal/core/domain"
)

// Authorizer asserts that the current call is authorized by addr. It
// returns an error wrapping domain.ErrUnauthorized otherwise.
type Authorizer interface {
	RequireAuth(ctx context.Context, addr domain.Address) error
}

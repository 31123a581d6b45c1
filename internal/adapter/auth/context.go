// Package auth proves control of ledger addresses.
//
// A caller authenticates with a short-lived JWT signed (EdDSA) by the secret
// key of a Stellar account; the token subject is the account's G... address
// and the verification key is decoded from that address. The verified
// address travels in the request context, where ContextAuthorizer checks it
// against the address an operation requires.
package auth

import (
	"context"
	"fmt"

	"crowdfund-ledger/internal/core/domain"
)

type callerKey struct{}

// WithCaller returns a context carrying a verified caller address.
func WithCaller(ctx context.Context, addr domain.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, addr)
}

// CallerFrom returns the verified caller address, if any.
func CallerFrom(ctx context.Context) (domain.Address, bool) {
	addr, ok := ctx.Value(callerKey{}).(domain.Address)
	return addr, ok && addr != ""
}

// ContextAuthorizer requires the verified caller to be the given address.
type ContextAuthorizer struct{}

func (ContextAuthorizer) RequireAuth(ctx context.Context, addr domain.Address) error {
	caller, ok := CallerFrom(ctx)
	if !ok {
		return fmt.Errorf("%w: no verified caller, %s must sign", domain.ErrUnauthorized, addr)
	}
	if caller != addr {
		return fmt.Errorf("%w: caller %s is not %s", domain.ErrUnauthorized, caller, addr)
	}
	return nil
}

// Trust accepts every call. It is meant for local development only.
type Trust struct{}

func (Trust) RequireAuth(context.Context, domain.Address) error { return nil }

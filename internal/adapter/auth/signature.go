package auth

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund-ledger/internal/core/domain"
)

// ErrInvalidProof is returned for tokens that do not prove control of their
// subject address.
var ErrInvalidProof = errors.New("invalid caller proof")

// Verifier checks caller proofs.
type Verifier struct {
	Audience string
	MaxAge   time.Duration
	Now      func() time.Time
}

// NewVerifier returns a Verifier accepting tokens for audience that were
// issued at most maxAge ago.
func NewVerifier(audience string, maxAge time.Duration) *Verifier {
	return &Verifier{Audience: audience, MaxAge: maxAge, Now: time.Now}
}

// Verify returns the address that signed token.
func (v *Verifier) Verify(token string) (domain.Address, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidProof)
	}
	now := v.Now
	if now == nil {
		now = time.Now
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		subject, err := t.Claims.GetSubject()
		if err != nil {
			return nil, err
		}
		addr, err := domain.ParseAddress(subject)
		if err != nil {
			return nil, err
		}
		return addr.PublicKey()
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience(v.Audience),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	if claims.IssuedAt == nil {
		return "", fmt.Errorf("%w: missing iat", ErrInvalidProof)
	}
	if v.MaxAge > 0 && now().Sub(claims.IssuedAt.Time) > v.MaxAge {
		return "", fmt.Errorf("%w: token older than %s", ErrInvalidProof, v.MaxAge)
	}
	return domain.Address(claims.Subject), nil
}

// Sign issues a caller proof for the account behind key. Clients and tests
// use it; the server only verifies.
func Sign(key ed25519.PrivateKey, audience string, issuedAt time.Time, ttl time.Duration) (string, error) {
	addr, err := domain.AccountAddress(key.Public().(ed25519.PublicKey))
	if err != nil {
		return "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   addr.String(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
}

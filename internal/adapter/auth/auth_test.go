package auth

import (
	"context"
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/core/domain"
)

const audience = "crowdfund-ledger"

func testKey(t *testing.T, b byte) (ed25519.PrivateKey, domain.Address) {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	key := ed25519.NewKeyFromSeed(seed)
	addr, err := domain.AccountAddress(key.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return key, addr
}

func TestVerifyRoundTrip(t *testing.T) {
	key, addr := testKey(t, 1)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := NewVerifier(audience, 5*time.Minute)
	v.Now = func() time.Time { return now }

	tok, err := Sign(key, audience, now.Add(-time.Minute), 2*time.Minute)
	require.NoError(t, err)

	got, err := v.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestVerifyRejects(t *testing.T) {
	key, addr := testKey(t, 1)
	other, _ := testKey(t, 2)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	forged := func() string {
		// Claims name addr but the signature comes from another key.
		claims := jwt.RegisteredClaims{
			Subject:   addr.String(),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(other)
		require.NoError(t, err)
		return s
	}
	hmac := func() string {
		claims := jwt.RegisteredClaims{
			Subject:   addr.String(),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}
	sign := func(aud string, iat time.Time, ttl time.Duration) string {
		s, err := Sign(key, aud, iat, ttl)
		require.NoError(t, err)
		return s
	}

	cases := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"wrong audience": sign("someone-else", now, time.Minute),
		"expired":        sign(audience, now.Add(-3*time.Minute), time.Minute),
		"too old":        sign(audience, now.Add(-10*time.Minute), time.Hour),
		"wrong key":      forged(),
		"wrong alg":      hmac(),
	}
	v := NewVerifier(audience, 5*time.Minute)
	v.Now = func() time.Time { return now }
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidProof)
		})
	}
}

func TestContextAuthorizer(t *testing.T) {
	_, alice := testKey(t, 1)
	_, bob := testKey(t, 2)
	var a ContextAuthorizer

	assert.NoError(t, a.RequireAuth(WithCaller(context.Background(), alice), alice))
	assert.ErrorIs(t, a.RequireAuth(WithCaller(context.Background(), bob), alice), domain.ErrUnauthorized)
	assert.ErrorIs(t, a.RequireAuth(context.Background(), alice), domain.ErrUnauthorized)
	assert.NoError(t, Trust{}.RequireAuth(context.Background(), alice))
}

package domain

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/stellar/go/strkey"
)

// Address identifies an account (G...) or a contract (C...) in strkey form.
type Address string

// ParseAddress validates s as an account or contract strkey.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if strkey.IsValidEd25519PublicKey(s) {
		return Address(s), nil
	}
	if _, err := strkey.Decode(strkey.VersionByteContract, s); err == nil {
		return Address(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
}

// MustParseAddress is ParseAddress for constants; it panics on bad input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AccountAddress encodes an ed25519 public key as an account strkey.
func AccountAddress(pub ed25519.PublicKey) (Address, error) {
	s, err := strkey.Encode(strkey.VersionByteAccountID, pub)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return Address(s), nil
}

// ContractAddress encodes a 32-byte contract hash as a contract strkey.
func ContractAddress(hash []byte) (Address, error) {
	s, err := strkey.Encode(strkey.VersionByteContract, hash)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return Address(s), nil
}

// IsAccount reports whether a is an account address, i.e. one that can sign.
func (a Address) IsAccount() bool {
	return strkey.IsValidEd25519PublicKey(string(a))
}

// PublicKey returns the ed25519 key behind an account address.
func (a Address) PublicKey() (ed25519.PublicKey, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, string(a))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not an account", ErrInvalidAddress, a)
	}
	return ed25519.PublicKey(raw), nil
}

func (a Address) String() string { return string(a) }

package model

import (
	"time"

	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Token is an opaque session credential issued after the shared-secret
// gate. Admin tokens additionally unlock the master-dataset endpoints.
type Token struct {
	ID        types.TokenID
	Admin     bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewToken issues a token with the given role and time-to-live
func NewToken(admin bool, ttl time.Duration) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        types.NewTokenID(),
		Admin:     admin,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the token is past its expiry
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

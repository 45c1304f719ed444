// Package session stores the backend auth token on the persistent store and
// derives the per-user cache namespace from it.
package session

import (
	"context"

	"github.com/negadras/summarizer-go/store"
)

// TokenKey is the well-known persistent-store key holding the auth token.
const TokenKey = "authToken"

// Store reads and writes the session token.
type Store struct {
	kv store.Store
}

func NewStore(kv store.Store) *Store {
	return &Store{kv: kv}
}

// Token returns the current auth token, or "" when absent or unreadable.
func (s *Store) Token(ctx context.Context) string {
	b, ok, err := s.kv.Get(ctx, TokenKey)
	if err != nil || !ok {
		return ""
	}
	return string(b)
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, TokenKey, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.kv.Delete(ctx, TokenKey)
}

// Hash returns the namespace discriminator for the current token, or ""
// when no session exists.
func (s *Store) Hash(ctx context.Context) string {
	return TokenHash(s.Token(ctx))
}

// TokenHash derives a per-user cache namespace from the trailing 8 characters
// of the token. It is a cheap partitioning heuristic with a small collision
// chance, not a security boundary.
func TokenHash(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return token
	}
	return token[len(token)-8:]
}

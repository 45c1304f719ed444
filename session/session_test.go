package session

import (
	"context"
	"testing"

	"github.com/negadras/summarizer-go/store"
)

func TestTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemory())

	if got := s.Token(ctx); got != "" {
		t.Fatalf("Token before set = %q", got)
	}
	if got := s.Hash(ctx); got != "" {
		t.Fatalf("Hash without token = %q", got)
	}

	if err := s.SetToken(ctx, "eyJhbGciOi.abcd1234"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if got := s.Token(ctx); got != "eyJhbGciOi.abcd1234" {
		t.Fatalf("Token = %q", got)
	}
	if got := s.Hash(ctx); got != "abcd1234" {
		t.Fatalf("Hash = %q", got)
	}

	if err := s.ClearToken(ctx); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if got := s.Token(ctx); got != "" {
		t.Fatalf("Token after clear = %q", got)
	}
}

func TestTokenHash(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"short":     "short",
		"12345678":  "12345678",
		"123456789": "23456789",
	}
	for in, want := range cases {
		if got := TokenHash(in); got != want {
			t.Errorf("TokenHash(%q) = %q, want %q", in, got, want)
		}
	}
}

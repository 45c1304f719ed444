package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/negadras/summarizer-go/apperr"
	"github.com/negadras/summarizer-go/session"
	"github.com/negadras/summarizer-go/store"
)

func newSessionStore(t *testing.T, token string) *session.Store {
	t.Helper()
	s := session.NewStore(store.NewMemory())
	if token != "" {
		if err := s.SetToken(context.Background(), token); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestClientListSummaries(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(UserSummariesResponse{
			Summaries:   []UserSummary{{ID: "1", Title: "t"}},
			TotalPages:  3,
			CurrentPage: 1,
			TotalCount:  25,
		})
	}))
	defer srv.Close()

	c, err := NewClient(ClientOptions{
		BaseURL:  srv.URL + "/api",
		Sessions: newSessionStore(t, "tok-12345678"),
	})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := c.ListSummaries(context.Background(), ListParams{
		Page: Int(1), Size: Int(10), SortBy: "createdAt", Saved: Bool(true),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer tok-12345678" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPath != "/api/users/me/summaries" {
		t.Fatalf("path = %q", gotPath)
	}
	// url.Values encodes alphabetically.
	if gotQuery != "page=1&saved=true&size=10&sortBy=createdAt" {
		t.Fatalf("query = %q", gotQuery)
	}
	if resp.TotalCount != 25 || len(resp.Summaries) != 1 || resp.Summaries[0].ID != "1" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestClientSaveAndUnsaveMethods(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewClient(ClientOptions{BaseURL: srv.URL + "/api", Sessions: newSessionStore(t, "tok")})
	if err != nil {
		t.Fatal(err)
	}

	if err := c.SaveSummary(context.Background(), "42"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/users/me/summaries/42/save" {
		t.Fatalf("save request = %s %s", gotMethod, gotPath)
	}

	if err := c.UnsaveSummary(context.Background(), "42"); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/users/me/summaries/42/save" {
		t.Fatalf("unsave request = %s %s", gotMethod, gotPath)
	}
}

func TestClientStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantCategory  apperr.Category
		wantRetryable bool
		wantMessage   string
	}{
		{
			name:   "unauthorized with message",
			status: http.StatusUnauthorized,
			body:   `{"message":"session expired"}`,

			wantCategory:  apperr.CategoryAuthentication,
			wantRetryable: false,
			wantMessage:   "session expired",
		},
		{
			name:          "forbidden is authentication",
			status:        http.StatusForbidden,
			body:          `{}`,
			wantCategory:  apperr.CategoryAuthentication,
			wantRetryable: false,
			wantMessage:   "Forbidden",
		},
		{
			name:          "not found falls back to details",
			status:        http.StatusNotFound,
			body:          `{"details":"no such summary"}`,
			wantCategory:  apperr.CategoryClient,
			wantRetryable: false,
			wantMessage:   "no such summary",
		},
		{
			name:          "service unavailable is retryable server",
			status:        http.StatusServiceUnavailable,
			body:          "",
			wantCategory:  apperr.CategoryServer,
			wantRetryable: true,
			wantMessage:   "Service Unavailable",
		},
		{
			name:          "too many requests is retryable client",
			status:        http.StatusTooManyRequests,
			body:          "",
			wantCategory:  apperr.CategoryClient,
			wantRetryable: true,
			wantMessage:   "Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient(ClientOptions{BaseURL: srv.URL})
			if err != nil {
				t.Fatal(err)
			}

			_, err = c.Stats(context.Background())
			var appErr *apperr.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("err = %v, want *apperr.Error", err)
			}
			if appErr.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", appErr.Category, tt.wantCategory)
			}
			if appErr.Retryable != tt.wantRetryable {
				t.Errorf("retryable = %v, want %v", appErr.Retryable, tt.wantRetryable)
			}
			if appErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", appErr.StatusCode, tt.status)
			}
			if appErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClientTransportErrorIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := NewClient(ClientOptions{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Stats(context.Background())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if appErr.Category != apperr.CategoryNetwork {
		t.Fatalf("category = %s, want network", appErr.Category)
	}
	if !appErr.Retryable {
		t.Fatal("transport errors should be retryable")
	}
}

func TestClientNoTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(mockShowcaseResponse())
	}))
	defer srv.Close()

	c, err := NewClient(ClientOptions{BaseURL: srv.URL, Sessions: newSessionStore(t, "")})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Showcase(context.Background(), ShowcaseParams{Category: "Technology"}); err != nil {
		t.Fatalf("showcase: %v", err)
	}
	if !hit {
		t.Fatal("server not hit")
	}
	if gotAuth != "" {
		t.Fatalf("auth header = %q, want empty", gotAuth)
	}
}

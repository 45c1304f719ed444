package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/negadras/summarizer-go/apperr"
	"github.com/negadras/summarizer-go/session"
)

// Backend is the remote summarization API. Client is the HTTP
// implementation; tests substitute fakes.
type Backend interface {
	ListSummaries(ctx context.Context, p ListParams) (UserSummariesResponse, error)
	GetSummary(ctx context.Context, id string) (UserSummary, error)
	SaveSummary(ctx context.Context, id string) error
	UnsaveSummary(ctx context.Context, id string) error
	Stats(ctx context.Context) (UserStats, error)
	Showcase(ctx context.Context, p ShowcaseParams) (ShowcaseResponse, error)
}

// ClientOptions configure the HTTP backend client. Only BaseURL is required.
type ClientOptions struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api". No trailing
	// slash.
	BaseURL string

	// HTTP overrides the transport; nil gets a client with a 15s timeout.
	HTTP *http.Client

	// Sessions supplies the bearer token. Nil sends unauthenticated requests;
	// the showcase endpoints work without one.
	Sessions *session.Store
}

// Client talks JSON to the summarization backend and translates non-2xx
// responses into categorized *apperr.Error values.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
}

var _ Backend = (*Client)(nil)

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("summarizer: client base URL is required")
	}
	h := opts.HTTP
	if h == nil {
		h = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: opts.BaseURL, http: h, sessions: opts.Sessions}, nil
}

func (c *Client) ListSummaries(ctx context.Context, p ListParams) (UserSummariesResponse, error) {
	var out UserSummariesResponse
	err := c.do(ctx, http.MethodGet, "/users/me/summaries", listQuery(p), &out)
	return out, err
}

func (c *Client) GetSummary(ctx context.Context, id string) (UserSummary, error) {
	var out UserSummary
	err := c.do(ctx, http.MethodGet, "/users/me/summaries/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) SaveSummary(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/users/me/summaries/"+url.PathEscape(id)+"/save", nil, nil)
}

func (c *Client) UnsaveSummary(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/me/summaries/"+url.PathEscape(id)+"/save", nil, nil)
}

func (c *Client) Stats(ctx context.Context) (UserStats, error) {
	var out UserStats
	err := c.do(ctx, http.MethodGet, "/users/me/stats", nil, &out)
	return out, err
}

func (c *Client) Showcase(ctx context.Context, p ShowcaseParams) (ShowcaseResponse, error) {
	q := url.Values{}
	if p.Page != nil {
		q.Set("page", strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		q.Set("size", strconv.Itoa(*p.Size))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	var out ShowcaseResponse
	err := c.do(ctx, http.MethodGet, "/showcase", q, &out)
	return out, err
}

func listQuery(p ListParams) url.Values {
	q := url.Values{}
	if p.Page != nil {
		q.Set("page", strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		q.Set("size", strconv.Itoa(*p.Size))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Saved != nil {
		q.Set("saved", strconv.FormatBool(*p.Saved))
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, dest any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("summarizer: build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.sessions != nil {
		if tok := c.sessions.Token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are network errors by definition; the retry
		// executor treats them as retryable.
		return apperr.New(fmt.Sprintf("request failed: %s %s", method, path), apperr.Options{
			Category: apperr.CategoryNetwork,
			Cause:    err,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperr.New(fmt.Sprintf("decode response: %s %s", method, path), apperr.Options{
			Category:  apperr.CategoryServer,
			Retryable: apperr.Retry(false),
			Cause:     err,
		})
	}
	return nil
}

// statusError maps a non-2xx response to a categorized error. The backend's
// error bodies are `{message, details}`; either field may be absent.
func statusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Details
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return apperr.New(msg, apperr.Options{
		Category:   statusCategory(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Retryable:  apperr.Retry(retryableStatus(resp.StatusCode)),
	})
}

func statusCategory(code int) apperr.Category {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperr.CategoryAuthentication
	case code >= 500:
		return apperr.CategoryServer
	case code >= 400:
		return apperr.CategoryClient
	default:
		return apperr.CategoryUnknown
	}
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

package summarizer

import "time"

// UserSummary is one summarized article belonging to the current user.
type UserSummary struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	SummaryContent    string    `json:"summaryContent"`
	KeyPoints         []string  `json:"keyPoints"`
	OriginalWordCount int       `json:"originalWordCount"`
	SummaryWordCount  int       `json:"summaryWordCount"`
	CompressionRatio  int       `json:"compressionRatio"` // percent
	Saved             bool      `json:"saved"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserSummariesResponse is one page of the user's summaries.
type UserSummariesResponse struct {
	Summaries   []UserSummary `json:"summaries"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	TotalCount  int           `json:"totalCount"`
}

// ListParams filter and paginate summary listings. Nil/empty fields are
// omitted from both the request and the cache key.
type ListParams struct {
	Page      *int
	Size      *int
	SortBy    string // e.g. "createdAt"
	SortOrder string // "asc" or "desc"
	Saved     *bool
}

// UserStats aggregates the user's summarization activity.
type UserStats struct {
	TotalSummaries int `json:"totalSummaries"`
	WordsSaved     int `json:"wordsSaved"`
	TimeSaved      int `json:"timeSaved"` // minutes
}

// ShowcaseStats carries the word-count figures shown on a showcase card.
type ShowcaseStats struct {
	OriginalWords    int `json:"originalWords"`
	SummaryWords     int `json:"summaryWords"`
	CompressionRatio int `json:"compressionRatio"`
}

// ShowcaseSummary is one entry of the public, unauthenticated showcase feed.
type ShowcaseSummary struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Snippet    string        `json:"snippet"`
	KeyPoints  []string      `json:"keyPoints"`
	Stats      ShowcaseStats `json:"stats"`
	Category   string        `json:"category"`
	Popularity int           `json:"popularity"`
}

// ShowcaseResponse is one page of the showcase feed.
type ShowcaseResponse struct {
	Summaries   []ShowcaseSummary `json:"summaries"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// ShowcaseParams filter and paginate the showcase feed.
type ShowcaseParams struct {
	Page     *int
	Size     *int
	Category string
}

// Int returns a pointer to v, for optional numeric params.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional boolean params.
func Bool(v bool) *bool { return &v }

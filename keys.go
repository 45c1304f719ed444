package summarizer

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Cache keys must be stable across call sites for identical requests:
// list keys sort their param pairs alphabetically, showcase keys keep the
// upstream query-string field order (page, size, category) with a leading
// "?" when any param is set. Changing either scheme silently orphans every
// previously cached entry.

func summariesKey(hash string, p ListParams) string {
	pairs := make([]string, 0, 5)
	if p.Page != nil {
		pairs = append(pairs, "page="+strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		pairs = append(pairs, "size="+strconv.Itoa(*p.Size))
	}
	if p.SortBy != "" {
		pairs = append(pairs, "sortBy="+p.SortBy)
	}
	if p.SortOrder != "" {
		pairs = append(pairs, "sortOrder="+p.SortOrder)
	}
	if p.Saved != nil {
		pairs = append(pairs, "saved="+strconv.FormatBool(*p.Saved))
	}
	sort.Strings(pairs)
	return "user_summaries_" + hash + "_" + strings.Join(pairs, "&")
}

func summaryKey(hash, id string) string {
	return "user_summary_" + hash + "_" + id
}

func statsKey(hash string) string {
	return "user_stats_" + hash
}

func showcaseKey(p ShowcaseParams) string {
	parts := make([]string, 0, 3)
	if p.Page != nil {
		parts = append(parts, "page="+strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		parts = append(parts, "size="+strconv.Itoa(*p.Size))
	}
	if p.Category != "" {
		parts = append(parts, "category="+url.QueryEscape(p.Category))
	}
	qs := strings.Join(parts, "&")
	if qs != "" {
		qs = "?" + qs
	}
	return "showcase_" + qs
}

package domain

import "strings"

const (
	DefaultPageSize   = 10
	DefaultTitleLimit = 17
)

// SearchResult is a recipe summary returned by a search
type SearchResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
}

// Search holds the results of one query
type Search struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// Page is one page of search results
type Page struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
	Total   int            `json:"total"`
	Prev    int            `json:"prev,omitempty"` // 0 when on the first page
	Next    int            `json:"next,omitempty"` // 0 when on the last page
}

// Paginate returns page (1-based) of results with perPage entries per page.
// An empty result set has a single empty page.
func Paginate(results []SearchResult, page, perPage int) (Page, error) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	pages := (len(results) + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page < 1 || page > pages {
		return Page{}, ErrInvalidPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > len(results) {
		end = len(results)
	}

	p := Page{
		Results: append([]SearchResult(nil), results[start:end]...),
		Page:    page,
		Pages:   pages,
		Total:   len(results),
	}
	if page > 1 {
		p.Prev = page - 1
	}
	if page < pages {
		p.Next = page + 1
	}
	return p, nil
}

// LimitTitle shortens title to whole words fitting in limit characters,
// appending " ..." when anything was cut
func LimitTitle(title string, limit int) string {
	if limit <= 0 || len(title) <= limit {
		return title
	}

	var kept []string
	length := 0
	for _, word := range strings.Fields(title) {
		if length+len(word) > limit {
			break
		}
		kept = append(kept, word)
		length += len(word)
	}
	return strings.Join(kept, " ") + " ..."
}

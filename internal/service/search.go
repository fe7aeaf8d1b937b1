package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"recipebox/internal/adapter"
	"recipebox/internal/domain"

	"go.uber.org/zap"
)

// SearchSettings controls how search results are paged and displayed
type SearchSettings struct {
	PageSize   int
	TitleLimit int
}

// DefaultSearchSettings returns the default paging settings
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		PageSize:   domain.DefaultPageSize,
		TitleLimit: domain.DefaultTitleLimit,
	}
}

// SearchService runs queries against a recipe source and pages the
// results held in the session's search slice
type SearchService struct {
	session  *Session
	source   adapter.RecipeSource
	settings atomic.Pointer[SearchSettings]
	logger   *zap.Logger
}

// NewSearchService creates a search service
func NewSearchService(session *Session, source adapter.RecipeSource, settings SearchSettings) *SearchService {
	s := &SearchService{
		session: session,
		source:  source,
		logger:  session.logger.Named("search"),
	}
	s.SetSettings(settings)
	return s
}

// SetSettings replaces the paging settings. Safe to call while serving.
func (s *SearchService) SetSettings(settings SearchSettings) {
	if settings.PageSize <= 0 {
		settings.PageSize = domain.DefaultPageSize
	}
	if settings.TitleLimit < 0 {
		settings.TitleLimit = domain.DefaultTitleLimit
	}
	s.settings.Store(&settings)
}

// Settings returns the current paging settings
func (s *SearchService) Settings() SearchSettings {
	return *s.settings.Load()
}

// Search queries the source, stores the results and returns the first page.
// A query with no results stores an empty search.
func (s *SearchService) Search(ctx context.Context, query string) (domain.Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Page{}, domain.ErrEmptyQuery
	}

	results, err := s.source.Search(ctx, query)
	if err != nil && !errors.Is(err, adapter.ErrNoResults) {
		s.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		return domain.Page{}, err
	}

	search := &domain.Search{Query: query, Results: results}
	err = s.session.mutate(ctx, func(st *State) (change, error) {
		st.Search = search
		return change{event: &Event{
			Type:    EventSearchCompleted,
			Payload: map[string]interface{}{"query": query, "total": len(results)},
		}}, nil
	})
	if err != nil {
		return domain.Page{}, err
	}

	s.logger.Debug("search completed", zap.String("query", query), zap.Int("results", len(results)))
	return s.paginate(search, 1)
}

// Page returns a page of the current search
func (s *SearchService) Page(page int) (domain.Page, error) {
	var search *domain.Search
	s.session.view(func(st *State) {
		search = st.Search
	})
	if search == nil {
		return domain.Page{}, ErrNoSearch
	}
	return s.paginate(search, page)
}

func (s *SearchService) paginate(search *domain.Search, page int) (domain.Page, error) {
	settings := s.Settings()
	p, err := domain.Paginate(search.Results, page, settings.PageSize)
	if err != nil {
		return domain.Page{}, err
	}
	p.Query = search.Query
	for i := range p.Results {
		p.Results[i].Title = domain.LimitTitle(p.Results[i].Title, settings.TitleLimit)
	}
	return p, nil
}

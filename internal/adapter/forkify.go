package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recipebox/internal/domain"

	"go.uber.org/zap"
)

// DefaultForkifyURL is the public forkify API
const DefaultForkifyURL = "https://forkify-api.herokuapp.com/api"

// ForkifyConfig holds configuration for the forkify client
type ForkifyConfig struct {
	// BaseURL of the API, without trailing slash
	BaseURL string
	// Timeout for a single request
	Timeout time.Duration
	// Recipe estimates applied to fetched recipes
	Recipe RecipeOptions
}

// DefaultForkifyConfig returns sensible defaults
func DefaultForkifyConfig() ForkifyConfig {
	return ForkifyConfig{
		BaseURL: DefaultForkifyURL,
		Timeout: 10 * time.Second,
		Recipe:  DefaultRecipeOptions(),
	}
}

// ForkifyAdapter fetches recipes from the forkify API
type ForkifyAdapter struct {
	config ForkifyConfig
	client *http.Client
	logger *zap.Logger
}

// NewForkifyAdapter creates a new forkify client
func NewForkifyAdapter(config ForkifyConfig, logger *zap.Logger) *ForkifyAdapter {
	if config.BaseURL == "" {
		config.BaseURL = DefaultForkifyURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForkifyAdapter{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger.Named("forkify"),
	}
}

// Name returns the adapter name
func (f *ForkifyAdapter) Name() string {
	return "forkify"
}

type forkifySummary struct {
	RecipeID  string `json:"recipe_id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"image_url"`
}

type forkifySearchResponse struct {
	Count   int              `json:"count"`
	Recipes []forkifySummary `json:"recipes"`
	Error   string           `json:"error,omitempty"`
}

type forkifyRecipe struct {
	forkifySummary
	SourceURL   string   `json:"source_url"`
	Ingredients []string `json:"ingredients"`
}

type forkifyRecipeResponse struct {
	Recipe *forkifyRecipe `json:"recipe"`
	Error  string         `json:"error,omitempty"`
}

// Search queries the API for recipes matching query
func (f *ForkifyAdapter) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	var resp forkifySearchResponse
	if err := f.get(ctx, "/search", url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Recipes) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, query)
	}

	results := make([]domain.SearchResult, 0, len(resp.Recipes))
	for _, r := range resp.Recipes {
		results = append(results, domain.SearchResult{
			ID:       r.RecipeID,
			Title:    r.Title,
			Author:   r.Publisher,
			ImageURL: r.ImageURL,
		})
	}

	f.logger.Debug("search complete", zap.String("query", query), zap.Int("results", len(results)))
	return results, nil
}

// Recipe fetches a single recipe by id
func (f *ForkifyAdapter) Recipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty recipe id", domain.ErrNotFound)
	}

	var resp forkifyRecipeResponse
	if err := f.get(ctx, "/get", url.Values{"rId": {id}}, &resp); err != nil {
		return nil, err
	}
	if resp.Recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	raw := resp.Recipe
	recipe := &domain.Recipe{
		ID:          id,
		Title:       raw.Title,
		Author:      raw.Publisher,
		ImageURL:    raw.ImageURL,
		SourceURL:   raw.SourceURL,
		Ingredients: domain.ParseIngredients(raw.Ingredients),
	}
	opts := f.config.Recipe
	recipe.CalcTime(opts.IngredientsPerGroup, opts.MinutesPerGroup)
	recipe.CalcServings(opts.Servings)

	f.logger.Debug("recipe fetched", zap.String("id", id), zap.Int("ingredients", len(recipe.Ingredients)))
	return recipe, nil
}

func (f *ForkifyAdapter) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := strings.TrimRight(f.config.BaseURL, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("upstream request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}
	return nil
}

package adapter

import (
	"context"
	"errors"

	"recipebox/internal/domain"
)

var (
	// ErrNoResults is returned when a search matches nothing
	ErrNoResults = errors.New("no recipes found")
	// ErrUpstream is returned when the recipe API answers with an error
	ErrUpstream = errors.New("recipe API error")
)

// RecipeSource is a remote catalogue of recipes
type RecipeSource interface {
	// Name returns the unique identifier for this source
	Name() string

	// Search returns summaries of recipes matching query
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Recipe fetches one recipe with parsed ingredients
	Recipe(ctx context.Context, id string) (*domain.Recipe, error)
}

// RecipeOptions controls how fetched recipes are estimated
type RecipeOptions struct {
	// Servings is the base serving count of a fetched recipe
	Servings int
	// IngredientsPerGroup and MinutesPerGroup drive the cooking-time estimate
	IngredientsPerGroup int
	MinutesPerGroup     int
}

// DefaultRecipeOptions returns the stock estimates
func DefaultRecipeOptions() RecipeOptions {
	return RecipeOptions{
		Servings:            domain.DefaultServings,
		IngredientsPerGroup: domain.DefaultIngredientsPerGroup,
		MinutesPerGroup:     domain.DefaultMinutesPerGroup,
	}
}

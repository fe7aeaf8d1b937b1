package adapter

import (
	"context"

	"recipebox/internal/domain"

	"golang.org/x/sync/errgroup"
)

// DefaultFetchConcurrency bounds parallel recipe fetches
const DefaultFetchConcurrency = 4

// FetchRecipes fetches several recipes concurrently, at most limit at a time.
// Results keep the order of ids. The first error cancels the remaining fetches.
func FetchRecipes(ctx context.Context, src RecipeSource, ids []string, limit int) ([]*domain.Recipe, error) {
	if limit <= 0 {
		limit = DefaultFetchConcurrency
	}

	recipes := make([]*domain.Recipe, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			r, err := src.Recipe(gctx, id)
			if err != nil {
				return err
			}
			recipes[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recipes, nil
}

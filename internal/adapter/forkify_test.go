package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"recipebox/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeForkify serves a tiny catalogue in the forkify response format
func newFakeForkify(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") != "pizza" {
			json.NewEncoder(w).Encode(map[string]any{"count": 0, "recipes": []any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"count": 2,
			"recipes": []map[string]any{
				{"recipe_id": "47746", "title": "Best Pizza Dough Ever", "publisher": "101 Cookbooks", "image_url": "http://img/47746.jpg"},
				{"recipe_id": "54454", "title": "Deep Dish Fruit Pizza", "publisher": "The Pioneer Woman", "image_url": "http://img/54454.jpg"},
			},
		})
	})

	mux.HandleFunc("GET /get", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("rId") {
		case "47746":
			json.NewEncoder(w).Encode(map[string]any{
				"recipe": map[string]any{
					"recipe_id":  "47746",
					"title":      "Best Pizza Dough Ever",
					"publisher":  "101 Cookbooks",
					"image_url":  "http://img/47746.jpg",
					"source_url": "http://101cookbooks.com/pizza",
					"ingredients": []string{
						"4 1/2 cups (20.25 ounces) unbleached high-gluten flour",
						"1 3/4 teaspoons salt",
						"1 teaspoon instant yeast",
						"1/4 cup olive oil",
					},
				},
			})
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		default:
			json.NewEncoder(w).Encode(map[string]any{"error": "Couldn't find recipe"})
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestAdapter(t *testing.T) *ForkifyAdapter {
	srv := newFakeForkify(t)
	cfg := DefaultForkifyConfig()
	cfg.BaseURL = srv.URL
	return NewForkifyAdapter(cfg, nil)
}

func TestForkifySearch(t *testing.T) {
	f := newTestAdapter(t)

	results, err := f.Search(context.Background(), "  pizza ")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.SearchResult{
		ID:       "47746",
		Title:    "Best Pizza Dough Ever",
		Author:   "101 Cookbooks",
		ImageURL: "http://img/47746.jpg",
	}, results[0])
}

func TestForkifySearchErrors(t *testing.T) {
	f := newTestAdapter(t)

	_, err := f.Search(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)

	_, err = f.Search(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestForkifyRecipe(t *testing.T) {
	f := newTestAdapter(t)

	r, err := f.Recipe(context.Background(), "47746")
	require.NoError(t, err)

	assert.Equal(t, "Best Pizza Dough Ever", r.Title)
	assert.Equal(t, "101 Cookbooks", r.Author)
	assert.Equal(t, domain.DefaultServings, r.Servings)
	assert.Equal(t, 30, r.CookingTime)
	require.Len(t, r.Ingredients, 4)
	assert.Equal(t, domain.Ingredient{Count: 4.5, Unit: "cup", Ingredient: "unbleached high-gluten flour"}, r.Ingredients[0])
	assert.Equal(t, domain.Ingredient{Count: 1.75, Unit: "tsp", Ingredient: "salt"}, r.Ingredients[1])
	assert.Equal(t, domain.Ingredient{Count: 0.25, Unit: "cup", Ingredient: "olive oil"}, r.Ingredients[3])
}

func TestForkifyRecipeErrors(t *testing.T) {
	f := newTestAdapter(t)

	_, err := f.Recipe(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.Recipe(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestForkifyHonorsContext(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-blocked:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(blocked)

	cfg := DefaultForkifyConfig()
	cfg.BaseURL = srv.URL
	f := NewForkifyAdapter(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Search(ctx, "pizza")
	assert.ErrorIs(t, err, ErrUpstream)
}

// stubSource counts concurrent calls
type stubSource struct {
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	fail     string
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return nil, nil
}

func (s *stubSource) Recipe(ctx context.Context, id string) (*domain.Recipe, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		old := s.maxSeen.Load()
		if n <= old || s.maxSeen.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	if id == s.fail {
		return nil, errors.New("fetch failed")
	}
	return &domain.Recipe{ID: id}, nil
}

func TestFetchRecipes(t *testing.T) {
	t.Run("keeps order and bounds concurrency", func(t *testing.T) {
		src := &stubSource{}
		ids := []string{"a", "b", "c", "d", "e", "f"}

		recipes, err := FetchRecipes(context.Background(), src, ids, 2)
		require.NoError(t, err)
		require.Len(t, recipes, len(ids))
		for i, r := range recipes {
			assert.Equal(t, ids[i], r.ID)
		}
		assert.LessOrEqual(t, src.maxSeen.Load(), int32(2))
	})

	t.Run("returns first error", func(t *testing.T) {
		src := &stubSource{fail: "c"}
		_, err := FetchRecipes(context.Background(), src, []string{"a", "b", "c"}, 0)
		assert.EqualError(t, err, "fetch failed")
	})
}

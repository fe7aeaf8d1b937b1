package service

import (
	"context"

	"recipebox/internal/adapter"
	"recipebox/internal/domain"

	"go.uber.org/zap"
)

// RecipeView is the current recipe plus whether it is liked
type RecipeView struct {
	Recipe *domain.Recipe `json:"recipe"`
	Liked  bool           `json:"liked"`
}

// RecipeService loads recipes into the session's recipe slice and scales servings
type RecipeService struct {
	session *Session
	source  adapter.RecipeSource
	logger  *zap.Logger
}

// NewRecipeService creates a recipe service
func NewRecipeService(session *Session, source adapter.RecipeSource) *RecipeService {
	return &RecipeService{
		session: session,
		source:  source,
		logger:  session.logger.Named("recipe"),
	}
}

// Load fetches a recipe and makes it current
func (r *RecipeService) Load(ctx context.Context, id string) (RecipeView, error) {
	if id == "" {
		return RecipeView{}, domain.ErrNotFound
	}

	recipe, err := r.source.Recipe(ctx, id)
	if err != nil {
		r.logger.Warn("failed to load recipe", zap.String("id", id), zap.Error(err))
		return RecipeView{}, err
	}

	var view RecipeView
	err = r.session.mutate(ctx, func(st *State) (change, error) {
		st.Recipe = recipe
		view = RecipeView{Recipe: copyRecipe(recipe), Liked: st.Likes.IsLiked(recipe.ID)}
		return change{event: &Event{Type: EventRecipeLoaded, Payload: recipe.Summary()}}, nil
	})
	return view, err
}

// Current returns the current recipe
func (r *RecipeService) Current() (RecipeView, error) {
	var view RecipeView
	var err error
	r.session.view(func(st *State) {
		if st.Recipe == nil {
			err = ErrNoRecipe
			return
		}
		view = RecipeView{Recipe: copyRecipe(st.Recipe), Liked: st.Likes.IsLiked(st.Recipe.ID)}
	})
	return view, err
}

// UpdateServings steps the current recipe's servings and rescales its ingredients
func (r *RecipeService) UpdateServings(ctx context.Context, dir domain.ServingsDirection) (RecipeView, error) {
	var view RecipeView
	err := r.session.mutate(ctx, func(st *State) (change, error) {
		if st.Recipe == nil {
			return change{}, ErrNoRecipe
		}
		if err := st.Recipe.UpdateServings(dir); err != nil {
			return change{}, err
		}
		view = RecipeView{Recipe: copyRecipe(st.Recipe), Liked: st.Likes.IsLiked(st.Recipe.ID)}
		return change{event: &Event{
			Type:    EventServingsUpdated,
			Payload: map[string]interface{}{"id": st.Recipe.ID, "servings": st.Recipe.Servings},
		}}, nil
	})
	return view, err
}

package service

import (
	"context"

	"recipebox/internal/adapter"
	"recipebox/internal/domain"
	"recipebox/internal/repository"
)

// LikesService manages the session's liked recipes
type LikesService struct {
	session *Session
}

// NewLikesService creates a likes service
func NewLikesService(session *Session) *LikesService {
	return &LikesService{session: session}
}

// All returns the likes in the order they were added
func (l *LikesService) All() []domain.Like {
	var likes []domain.Like
	l.session.view(func(st *State) {
		likes = st.Likes.All()
	})
	return likes
}

// IsLiked reports whether a recipe is liked
func (l *LikesService) IsLiked(id string) bool {
	var liked bool
	l.session.view(func(st *State) {
		liked = st.Likes.IsLiked(id)
	})
	return liked
}

// Toggle likes or unlikes the current recipe and reports whether it is now liked
func (l *LikesService) Toggle(ctx context.Context) (domain.Like, bool, error) {
	var (
		like  domain.Like
		liked bool
	)
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		if st.Recipe == nil {
			return change{}, ErrNoRecipe
		}
		var err error
		like, liked, err = st.Likes.Toggle(st.Recipe)
		if err != nil {
			return change{}, err
		}
		return likeChange(like, liked), nil
	})
	return like, liked, err
}

// Like adds a like for a recipe that need not be current. The recipe is
// fetched from src unless it is the current recipe.
func (l *LikesService) Like(ctx context.Context, src adapter.RecipeSource, id string) (domain.Like, error) {
	var recipe *domain.Recipe
	l.session.view(func(st *State) {
		if st.Recipe != nil && st.Recipe.ID == id {
			recipe = copyRecipe(st.Recipe)
		}
	})
	if recipe == nil {
		var err error
		if recipe, err = src.Recipe(ctx, id); err != nil {
			return domain.Like{}, err
		}
	}

	var like domain.Like
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		var err error
		like, err = st.Likes.AddLike(recipe.ID, recipe.Title, recipe.Author, recipe.ImageURL)
		if err != nil {
			return change{}, err
		}
		return likeChange(like, true), nil
	})
	return like, err
}

// Delete removes the like for a recipe
func (l *LikesService) Delete(ctx context.Context, id string) error {
	return l.session.mutate(ctx, func(st *State) (change, error) {
		if err := st.Likes.DeleteLike(id); err != nil {
			return change{}, err
		}
		return likeChange(domain.Like{ID: id}, false), nil
	})
}

func likeChange(like domain.Like, liked bool) change {
	t := EventLikeRemoved
	if liked {
		t = EventLikeAdded
	}
	return change{
		event:   &Event{Type: t, Payload: like},
		persist: []string{repository.KeyLikes},
	}
}

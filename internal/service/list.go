package service

import (
	"context"
	"strings"

	"recipebox/internal/domain"
	"recipebox/internal/repository"
)

// ListService manages the session's shopping list
type ListService struct {
	session *Session
}

// NewListService creates a shopping list service
func NewListService(session *Session) *ListService {
	return &ListService{session: session}
}

// Items returns the list in insertion order
func (l *ListService) Items() []domain.ListItem {
	var items []domain.ListItem
	l.session.view(func(st *State) {
		items = st.List.Items()
	})
	return items
}

// Item returns one list item
func (l *ListService) Item(id string) (domain.ListItem, error) {
	var (
		item domain.ListItem
		ok   bool
	)
	l.session.view(func(st *State) {
		item, ok = st.List.Item(id)
	})
	if !ok {
		return domain.ListItem{}, domain.ErrNotFound
	}
	return item, nil
}

// Add appends a single item
func (l *ListService) Add(ctx context.Context, count float64, unit, ingredient string) (domain.ListItem, error) {
	var item domain.ListItem
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		var err error
		item, err = st.List.AddItem(count, strings.TrimSpace(unit), strings.TrimSpace(ingredient))
		if err != nil {
			return change{}, err
		}
		return change{
			event:   &Event{Type: EventListItemAdded, Payload: item},
			persist: []string{repository.KeyList},
		}, nil
	})
	return item, err
}

// AddRecipe appends every ingredient of the current recipe, at its current servings
func (l *ListService) AddRecipe(ctx context.Context) ([]domain.ListItem, error) {
	var added []domain.ListItem
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		if st.Recipe == nil {
			return change{}, ErrNoRecipe
		}
		added = st.List.AddIngredients(st.Recipe.Ingredients)
		return change{
			event:   &Event{Type: EventListItemAdded, Payload: added},
			persist: []string{repository.KeyList},
		}, nil
	})
	return added, err
}

// AddIngredients appends ingredients that need not belong to the current recipe
func (l *ListService) AddIngredients(ctx context.Context, ings []domain.Ingredient) ([]domain.ListItem, error) {
	var added []domain.ListItem
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		added = st.List.AddIngredients(ings)
		return change{
			event:   &Event{Type: EventListItemAdded, Payload: added},
			persist: []string{repository.KeyList},
		}, nil
	})
	return added, err
}

// Delete removes an item
func (l *ListService) Delete(ctx context.Context, id string) error {
	return l.session.mutate(ctx, func(st *State) (change, error) {
		if err := st.List.DeleteItem(id); err != nil {
			return change{}, err
		}
		return change{
			event:   &Event{Type: EventListItemDeleted, Payload: map[string]string{"id": id}},
			persist: []string{repository.KeyList},
		}, nil
	})
}

// UpdateCount sets an item's count
func (l *ListService) UpdateCount(ctx context.Context, id string, count float64) (domain.ListItem, error) {
	var item domain.ListItem
	err := l.session.mutate(ctx, func(st *State) (change, error) {
		var err error
		item, err = st.List.UpdateCount(id, count)
		if err != nil {
			return change{}, err
		}
		return change{
			event:   &Event{Type: EventListItemUpdated, Payload: item},
			persist: []string{repository.KeyList},
		}, nil
	})
	return item, err
}

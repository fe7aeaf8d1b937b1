package domain

import (
	"errors"
	"testing"
)

func TestShoppingList(t *testing.T) {
	t.Run("add ingredients keeps recipe order", func(t *testing.T) {
		l := NewShoppingList(WithIDFunc(SequenceIDs("i")))
		added := l.AddIngredients([]Ingredient{
			{Count: 2, Unit: "cup", Ingredient: "flour"},
			{Count: 1, Unit: "tsp", Ingredient: "salt"},
		})

		if len(added) != 2 || l.Len() != 2 {
			t.Fatalf("expected 2 items, got %d/%d", len(added), l.Len())
		}
		items := l.Items()
		if items[0].Ingredient != "flour" || items[1].Ingredient != "salt" {
			t.Errorf("unexpected order: %+v", items)
		}
		if items[0].ID != "i1" || items[1].ID != "i2" {
			t.Errorf("unexpected ids: %s %s", items[0].ID, items[1].ID)
		}
	})

	t.Run("update count", func(t *testing.T) {
		l := NewShoppingList()
		item, err := l.AddItem(2, "kg", "flour")
		if err != nil {
			t.Fatalf("add: %v", err)
		}

		updated, err := l.UpdateCount(item.ID, 3)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Count != 3 || updated.Unit != "kg" || updated.Ingredient != "flour" {
			t.Errorf("unexpected item %+v", updated)
		}
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		l := NewShoppingList()
		if _, err := l.AddItem(-1, "", "x"); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("expected ErrInvalidCount, got %v", err)
		}
		item, _ := l.AddItem(1, "", "x")
		if _, err := l.UpdateCount(item.ID, -2); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("expected ErrInvalidCount, got %v", err)
		}
	})

	t.Run("delete unknown item", func(t *testing.T) {
		l := NewShoppingList()
		if err := l.DeleteItem("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestLikes(t *testing.T) {
	recipe := &Recipe{ID: "47746", Title: "Pizza", Author: "Closet Cooking", ImageURL: "img"}

	t.Run("toggle likes then unlikes", func(t *testing.T) {
		likes := NewLikes()

		like, liked, err := likes.Toggle(recipe)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !liked || like.ID != recipe.ID || like.Title != "Pizza" {
			t.Errorf("unexpected like %+v liked=%v", like, liked)
		}
		if !likes.IsLiked(recipe.ID) || likes.Count() != 1 {
			t.Error("expected recipe to be liked")
		}

		_, liked, err = likes.Toggle(recipe)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if liked || likes.IsLiked(recipe.ID) || likes.Count() != 0 {
			t.Error("expected recipe to be unliked")
		}
	})

	t.Run("liking twice fails", func(t *testing.T) {
		likes := NewLikes()
		if _, err := likes.AddLike("1", "a", "b", "c"); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := likes.AddLike("1", "a", "b", "c"); !errors.Is(err, ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("replace from persisted data", func(t *testing.T) {
		likes := NewLikes()
		err := likes.Replace([]Like{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
		if err != nil {
			t.Fatalf("replace: %v", err)
		}
		all := likes.All()
		if len(all) != 2 || all[0].ID != "1" || all[1].ID != "2" {
			t.Errorf("unexpected likes %+v", all)
		}
	})
}

package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestList() *Collection[ListItem] {
	return NewCollection[ListItem](WithIDFunc(SequenceIDs("item-")))
}

func ids(items []ListItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCollectionAdd(t *testing.T) {
	t.Run("length equals number of adds and ids are distinct", func(t *testing.T) {
		c := NewCollection[ListItem]()
		seen := make(map[string]bool)

		for i := 0; i < 50; i++ {
			rec := c.Add(ListItem{Count: float64(i), Ingredient: "salt"})
			if rec.ID == "" {
				t.Fatal("expected generated id")
			}
			if seen[rec.ID] {
				t.Fatalf("duplicate id %s", rec.ID)
			}
			seen[rec.ID] = true
		}

		if c.Len() != 50 {
			t.Errorf("expected 50 records, got %d", c.Len())
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "a"})
		c.Add(ListItem{Ingredient: "b"})
		c.Add(ListItem{Ingredient: "c"})

		want := []string{"item-1", "item-2", "item-3"}
		if diff := cmp.Diff(want, ids(c.Export())); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("skips ids already issued", func(t *testing.T) {
		calls := 0
		gen := func() string {
			calls++
			if calls <= 3 {
				return "fixed"
			}
			return "other"
		}
		c := NewCollection[ListItem](WithIDFunc(gen))

		first := c.Add(ListItem{Ingredient: "a"})
		second := c.Add(ListItem{Ingredient: "b"})

		if first.ID != "fixed" || second.ID != "other" {
			t.Errorf("expected fixed/other, got %s/%s", first.ID, second.ID)
		}
	})

	t.Run("removed ids are not reused", func(t *testing.T) {
		c := NewCollection[ListItem](WithIDFunc(func() func() string {
			seq := []string{"x", "x", "y"}
			i := 0
			return func() string {
				id := seq[i%len(seq)]
				i++
				return id
			}
		}()))

		rec := c.Add(ListItem{Ingredient: "a"})
		if err := c.Remove(rec.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		next := c.Add(ListItem{Ingredient: "b"})
		if next.ID == rec.ID {
			t.Errorf("id %s reused after removal", rec.ID)
		}
	})
}

func TestCollectionRemove(t *testing.T) {
	t.Run("add then remove restores previous state", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "a"})
		c.Add(ListItem{Ingredient: "b"})
		before := c.Export()

		rec := c.Add(ListItem{Ingredient: "c"})
		if err := c.Remove(rec.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}

		if diff := cmp.Diff(before, c.Export()); diff != "" {
			t.Errorf("collection changed (-want +got):\n%s", diff)
		}
	})

	t.Run("removing from the middle keeps relative order", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "a"})
		mid := c.Add(ListItem{Ingredient: "b"})
		c.Add(ListItem{Ingredient: "c"})

		if err := c.Remove(mid.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}

		want := []string{"item-1", "item-3"}
		if diff := cmp.Diff(want, ids(c.Export())); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing id reports not found and changes nothing", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "a"})
		c.Add(ListItem{Ingredient: "b"})
		before := c.Export()

		err := c.Remove("nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if diff := cmp.Diff(before, c.Export()); diff != "" {
			t.Errorf("collection changed (-want +got):\n%s", diff)
		}
	})
}

func TestCollectionUpdate(t *testing.T) {
	t.Run("updates designated field only", func(t *testing.T) {
		c := newTestList()
		rec := c.Add(ListItem{Count: 1, Unit: "cup", Ingredient: "rice"})

		_, err := c.Update(rec.ID, func(it ListItem) ListItem {
			it.Count = 2.5
			return it
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}

		got, ok := c.Find(rec.ID)
		if !ok {
			t.Fatal("record vanished")
		}
		want := ListItem{ID: rec.ID, Count: 2.5, Unit: "cup", Ingredient: "rice"}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("id cannot be changed by the update function", func(t *testing.T) {
		c := newTestList()
		rec := c.Add(ListItem{Ingredient: "rice"})

		updated, err := c.Update(rec.ID, func(it ListItem) ListItem {
			it.ID = "hijacked"
			return it
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.ID != rec.ID {
			t.Errorf("expected id %s, got %s", rec.ID, updated.ID)
		}
		if c.Contains("hijacked") {
			t.Error("collection contains rewritten id")
		}
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		c := newTestList()
		_, err := c.Update("nope", func(it ListItem) ListItem { return it })
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCollectionImportExport(t *testing.T) {
	t.Run("round trip yields equal collection", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Count: 2, Unit: "kg", Ingredient: "flour"})
		c.Add(ListItem{Count: 0.5, Unit: "tsp", Ingredient: "salt"})
		c.Add(ListItem{Count: 3, Ingredient: "eggs"})

		exported := c.Export()
		restored := NewCollection[ListItem]()
		if err := restored.Import(exported); err != nil {
			t.Fatalf("import: %v", err)
		}

		if diff := cmp.Diff(c.Export(), restored.Export()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("export is a copy", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "a"})

		out := c.Export()
		out[0].Ingredient = "changed"

		got, _ := c.Find("item-1")
		if got.Ingredient != "a" {
			t.Errorf("export aliased internal storage")
		}
	})

	t.Run("duplicate ids rejected without change", func(t *testing.T) {
		c := newTestList()
		c.Add(ListItem{Ingredient: "keep"})

		err := c.Import([]ListItem{{ID: "a"}, {ID: "a"}})
		if !errors.Is(err, ErrDuplicateID) || !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("expected ErrDuplicateID and ErrInvalidRecord, got %v", err)
		}
		if c.Len() != 1 {
			t.Errorf("expected original contents kept, got %d records", c.Len())
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		c := newTestList()
		err := c.Import([]ListItem{{Ingredient: "x"}})
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("expected ErrInvalidRecord, got %v", err)
		}
	})

	t.Run("imported ids are never generated again", func(t *testing.T) {
		c := newTestList()
		if err := c.Import([]ListItem{{ID: "item-1"}, {ID: "item-2"}}); err != nil {
			t.Fatalf("import: %v", err)
		}
		rec := c.Add(ListItem{Ingredient: "new"})
		if rec.ID != "item-3" {
			t.Errorf("expected item-3, got %s", rec.ID)
		}
	})
}

func TestCollectionInsert(t *testing.T) {
	c := NewCollection[Like]()

	if err := c.Insert(Like{ID: "r1", Title: "Pizza"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := c.Insert(Like{ID: "r1"}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if err := c.Insert(Like{}); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 record, got %d", c.Len())
	}
}

func TestCollectionScenario(t *testing.T) {
	c := newTestList()

	rec := c.Add(ListItem{Count: 2, Unit: "kg", Ingredient: "flour"})
	want := ListItem{ID: rec.ID, Count: 2, Unit: "kg", Ingredient: "flour"}
	if rec != want {
		t.Fatalf("expected %+v, got %+v", want, rec)
	}

	if _, err := c.Update(rec.ID, func(it ListItem) ListItem {
		it.Count = 3
		return it
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := c.Find(rec.ID)
	if got.Count != 3 {
		t.Errorf("expected count 3, got %v", got.Count)
	}

	if err := c.Remove(rec.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty collection, got %d", c.Len())
	}
}

func TestSequenceIDs(t *testing.T) {
	next := SequenceIDs("n")
	if a, b := next(), next(); a != "n1" || b != "n2" {
		t.Errorf("expected n1 n2, got %s %s", a, b)
	}
}

package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if expected != actual
func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

// ============================================================================
// Blob Tests
// ============================================================================

func TestLoadMissingKey(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.Load(context.Background(), "likes")
	assertNoError(t, err)
	if data != nil {
		t.Fatalf("expected nil for missing key, got %q", data)
	}
}

func TestSaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.Save(ctx, "likes", []byte(`[{"id":"1"}]`)))

	data, err := repo.Load(ctx, "likes")
	assertNoError(t, err)
	assertEqual(t, `[{"id":"1"}]`, string(data))
}

func TestSaveOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.Save(ctx, "list", []byte("first")))
	assertNoError(t, repo.Save(ctx, "list", []byte("second")))

	data, err := repo.Load(ctx, "list")
	assertNoError(t, err)
	assertEqual(t, "second", string(data))

	keys, err := repo.Keys(ctx)
	assertNoError(t, err)
	assertEqual(t, []string{"list"}, keys)
}

func TestSaveRequiresKey(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Save(context.Background(), "", []byte("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.Save(ctx, "likes", []byte("x")))
	assertNoError(t, repo.Delete(ctx, "likes"))
	assertNoError(t, repo.Delete(ctx, "likes")) // missing key is fine

	data, err := repo.Load(ctx, "likes")
	assertNoError(t, err)
	if data != nil {
		t.Fatalf("expected key to be gone, got %q", data)
	}
}

func TestKeysSorted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"list", "a", "likes"} {
		assertNoError(t, repo.Save(ctx, k, []byte(k)))
	}

	keys, err := repo.Keys(ctx)
	assertNoError(t, err)
	assertEqual(t, []string{"a", "likes", "list"}, keys)
}

func TestSaveAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.SaveAll(ctx, map[string][]byte{
		"likes": []byte("L"),
		"list":  []byte("S"),
	})
	assertNoError(t, err)

	likes, err := repo.Load(ctx, "likes")
	assertNoError(t, err)
	list, err := repo.Load(ctx, "list")
	assertNoError(t, err)
	assertEqual(t, "L", string(likes))
	assertEqual(t, "S", string(list))
}

func TestFileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebox.db")
	ctx := context.Background()

	repo, err := New(path)
	assertNoError(t, err)
	assertNoError(t, repo.Save(ctx, "likes", []byte("kept")))
	assertNoError(t, repo.Close())

	reopened, err := New(path)
	assertNoError(t, err)
	defer reopened.Close()

	data, err := reopened.Load(ctx, "likes")
	assertNoError(t, err)
	assertEqual(t, "kept", string(data))
}

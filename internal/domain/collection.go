package domain

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Record is a value held in a Collection. WithID returns a copy of the
// value carrying the given identifier.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// IDFunc produces candidate identifiers for new records
type IDFunc func() string

// NewUUID returns a time-ordered random identifier (UUIDv7)
func NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceIDs returns an IDFunc yielding prefix1, prefix2, ...
// The counter is owned by the returned function, so give each collection its own.
func SequenceIDs(prefix string) IDFunc {
	var n uint64
	return func() string {
		n++
		return prefix + strconv.FormatUint(n, 10)
	}
}

// CollectionOption configures a Collection
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	newID IDFunc
}

// WithIDFunc overrides the identifier generator
func WithIDFunc(fn IDFunc) CollectionOption {
	return func(o *collectionOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Collection is an ordered set of records keyed by identifier.
// Insertion order is preserved and no two members share an id.
// A Collection is not safe for concurrent use.
type Collection[T Record[T]] struct {
	items []T
	// issued holds every id ever assigned or imported, so removed ids are not reused
	issued map[string]struct{}
	newID  IDFunc
}

// NewCollection creates an empty collection
func NewCollection[T Record[T]](opts ...CollectionOption) *Collection[T] {
	o := collectionOptions{newID: NewUUID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		items:  make([]T, 0),
		issued: make(map[string]struct{}),
		newID:  o.newID,
	}
}

// Add assigns a fresh identifier to payload, appends it and returns the stored record
func (c *Collection[T]) Add(payload T) T {
	rec := payload.WithID(c.nextID())
	c.items = append(c.items, rec)
	return rec
}

// Insert appends a record that already carries its identifier.
// Used by collections whose ids come from outside (likes are keyed by recipe id).
func (c *Collection[T]) Insert(rec T) error {
	id := rec.RecordID()
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if c.indexOf(id) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	c.issued[id] = struct{}{}
	c.items = append(c.items, rec)
	return nil
}

// Remove deletes the record with id, preserving the order of the rest
func (c *Collection[T]) Remove(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Update replaces the record with id by fn applied to it.
// The identifier is kept whatever fn returns.
func (c *Collection[T]) Update(id string, fn func(T) T) (T, error) {
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.items[i] = fn(c.items[i]).WithID(id)
	return c.items[i], nil
}

// Find returns the record with id
func (c *Collection[T]) Find(id string) (T, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Contains reports whether a record with id exists
func (c *Collection[T]) Contains(id string) bool {
	return c.indexOf(id) >= 0
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Export returns a copy of all records in order
func (c *Collection[T]) Export() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Import replaces the contents with records. Ids must be non-empty and
// pairwise distinct; otherwise the collection is left unchanged.
func (c *Collection[T]) Import(records []T) error {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		id := rec.RecordID()
		if id == "" {
			return fmt.Errorf("%w: record %d has empty id", ErrInvalidRecord, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %w: %s", ErrInvalidRecord, ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	items := make([]T, len(records))
	copy(items, records)
	c.items = items
	for id := range seen {
		c.issued[id] = struct{}{}
	}
	return nil
}

// Clear removes every record. Issued ids stay reserved.
func (c *Collection[T]) Clear() {
	c.items = make([]T, 0)
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) nextID() string {
	for {
		id := c.newID()
		if _, used := c.issued[id]; used || id == "" {
			continue
		}
		c.issued[id] = struct{}{}
		return id
	}
}

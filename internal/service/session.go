package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"recipebox/internal/domain"
	"recipebox/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrNoRecipe is returned when an operation needs a current recipe
	ErrNoRecipe = errors.New("no recipe selected")
	// ErrNoSearch is returned when paging without a prior search
	ErrNoSearch = errors.New("no search performed")
)

// Persister loads and saves encoded collections by key
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	// SaveAll writes several keys atomically
	SaveAll(ctx context.Context, blobs map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// State is the application state of one session. Each feature service
// works on its own slice.
type State struct {
	Search *domain.Search
	Recipe *domain.Recipe
	List   *domain.ShoppingList
	Likes  *domain.Likes
}

// change is what a mutation reports back to the session
type change struct {
	event   *Event
	persist []string
}

// Session owns the application state, serializes access to it, persists
// collections after mutation and publishes change events
type Session struct {
	mu sync.Mutex
	// persistMu orders mutations end to end, so saves and events land in
	// the same order as the changes they describe. Taken before mu.
	persistMu sync.Mutex
	state     State
	store     Persister
	bus       *EventBus
	logger    *zap.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithListIDs overrides the shopping list id generator
func WithListIDs(fn domain.IDFunc) SessionOption {
	return func(s *Session) {
		s.state.List = domain.NewShoppingList(domain.WithIDFunc(fn))
	}
}

// NewSession creates a session with empty collections. store may be nil
// for a session that is never persisted.
func NewSession(store Persister, bus *EventBus, logger *zap.Logger, opts ...SessionOption) *Session {
	if bus == nil {
		bus = NewEventBus()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		state: State{
			List:  domain.NewShoppingList(),
			Likes: domain.NewLikes(),
		},
		store:  store,
		bus:    bus,
		logger: logger.Named("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores persisted collections. Malformed data is logged and
// treated as empty; only store failures are returned.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var likes []domain.Like
	if err := s.loadKey(ctx, repository.KeyLikes, &likes); err != nil {
		return err
	}
	if err := s.state.Likes.Replace(likes); err != nil {
		s.logger.Warn("discarding invalid persisted likes", zap.Error(err))
	}

	var items []domain.ListItem
	if err := s.loadKey(ctx, repository.KeyList, &items); err != nil {
		return err
	}
	if err := s.state.List.Replace(items); err != nil {
		s.logger.Warn("discarding invalid persisted list", zap.Error(err))
	}

	s.logger.Info("session restored",
		zap.Int("likes", s.state.Likes.Count()),
		zap.Int("list_items", s.state.List.Len()))
	return nil
}

func (s *Session) loadKey(ctx context.Context, key string, target interface{}) error {
	data, err := s.store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		s.logger.Warn("discarding malformed persisted data", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// Bus returns the session's event bus
func (s *Session) Bus() *EventBus {
	return s.bus
}

// view runs fn with read access to the state
func (s *Session) view(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// mutate runs fn with write access, then publishes its event and persists
// the keys it names. Persistence errors are returned after the in-memory
// change is kept; the next successful save writes the full collection.
// Readers only wait on mu and are not held up by the save.
func (s *Session) mutate(ctx context.Context, fn func(st *State) (change, error)) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	c, err := fn(&s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	blobs, encErr := s.encode(c.persist)
	s.mu.Unlock()

	if c.event != nil {
		s.bus.Publish(*c.event)
	}
	if encErr != nil {
		return encErr
	}
	return s.save(ctx, blobs)
}

// encode must be called with s.mu held
func (s *Session) encode(keys []string) (map[string][]byte, error) {
	if s.store == nil || len(keys) == 0 {
		return nil, nil
	}
	blobs := make(map[string][]byte, len(keys))
	for _, key := range keys {
		var v interface{}
		switch key {
		case repository.KeyLikes:
			v = s.state.Likes.All()
		case repository.KeyList:
			v = s.state.List.Items()
		default:
			return nil, fmt.Errorf("unknown persistence key %q", key)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		blobs[key] = data
	}
	return blobs, nil
}

// save must be called with s.persistMu held
func (s *Session) save(ctx context.Context, blobs map[string][]byte) error {
	switch len(blobs) {
	case 0:
		return nil
	case 1:
		for key, data := range blobs {
			if err := s.store.Save(ctx, key, data); err != nil {
				s.logger.Error("failed to persist", zap.String("key", key), zap.Error(err))
				return fmt.Errorf("persist %s: %w", key, err)
			}
		}
		return nil
	default:
		if err := s.store.SaveAll(ctx, blobs); err != nil {
			s.logger.Error("failed to persist", zap.Int("keys", len(blobs)), zap.Error(err))
			return fmt.Errorf("persist: %w", err)
		}
		return nil
	}
}

// Reset empties the shopping list and likes and deletes every persisted key.
// Ids issued before the reset stay reserved.
func (s *Session) Reset(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.state.List.Clear()
	s.state.Likes.Clear()
	s.mu.Unlock()

	s.bus.Publish(Event{Type: EventStateCleared})
	if s.store == nil {
		return nil
	}

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("list persisted keys: %w", err)
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Error("failed to delete", zap.String("key", key), zap.Error(err))
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	s.logger.Info("session reset", zap.Int("keys_deleted", len(keys)))
	return nil
}

// StateView is a read-only copy of the session state
type StateView struct {
	Query     string            `json:"query,omitempty"`
	Results   int               `json:"results"`
	Recipe    *domain.Recipe    `json:"recipe,omitempty"`
	Liked     bool              `json:"liked"`
	List      []domain.ListItem `json:"list"`
	Likes     []domain.Like     `json:"likes"`
	LikeCount int               `json:"like_count"`
}

// Snapshot returns a copy of the whole state
func (s *Session) Snapshot() StateView {
	var v StateView
	s.view(func(st *State) {
		if st.Search != nil {
			v.Query = st.Search.Query
			v.Results = len(st.Search.Results)
		}
		if st.Recipe != nil {
			v.Recipe = copyRecipe(st.Recipe)
			v.Liked = st.Likes.IsLiked(st.Recipe.ID)
		}
		v.List = st.List.Items()
		v.Likes = st.Likes.All()
		v.LikeCount = st.Likes.Count()
	})
	return v
}

func copyRecipe(r *domain.Recipe) *domain.Recipe {
	cp := *r
	cp.Ingredients = append([]domain.Ingredient(nil), r.Ingredients...)
	return &cp
}

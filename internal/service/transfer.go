package service

import (
	"context"
	"fmt"
	"io"

	"recipebox/internal/codec"
	"recipebox/internal/domain"
	"recipebox/internal/repository"

	"go.uber.org/zap"
)

// Export returns the persisted collections as a snapshot
func (s *Session) Export() *domain.Snapshot {
	snap := domain.NewSnapshot()
	s.view(func(st *State) {
		snap.List = st.List.Items()
		snap.Likes = st.Likes.All()
	})
	return snap
}

// ExportTo writes a snapshot in format to w
func (s *Session) ExportTo(w io.Writer, format string) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	return c.Export(s.Export(), w)
}

// Import replaces the list and likes with the snapshot contents. Both
// collections are validated before either is replaced.
func (s *Session) Import(ctx context.Context, snap *domain.Snapshot) error {
	list := domain.NewShoppingList()
	if err := list.Replace(snap.List); err != nil {
		return fmt.Errorf("%w: list: %v", domain.ErrInvalidRecord, err)
	}
	likes := domain.NewLikes()
	if err := likes.Replace(snap.Likes); err != nil {
		return fmt.Errorf("%w: likes: %v", domain.ErrInvalidRecord, err)
	}

	err := s.mutate(ctx, func(st *State) (change, error) {
		// validated above, so these cannot fail
		if err := st.List.Replace(snap.List); err != nil {
			return change{}, err
		}
		if err := st.Likes.Replace(snap.Likes); err != nil {
			return change{}, err
		}
		return change{
			event: &Event{
				Type:    EventStateImported,
				Payload: map[string]int{"list": len(snap.List), "likes": len(snap.Likes)},
			},
			persist: []string{repository.KeyList, repository.KeyLikes},
		}, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("state imported",
		zap.Int("list_items", len(snap.List)),
		zap.Int("likes", len(snap.Likes)))
	return nil
}

// ImportFrom parses a snapshot in format from r and imports it
func (s *Session) ImportFrom(ctx context.Context, r io.Reader, format string) (*domain.Snapshot, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}
	snap, err := c.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}
	if err := s.Import(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/seed"
)

// Store is an in-memory exhibition catalogue. Listing order is insertion order with
// submissions placed in front.
type Store struct {
	mu          sync.RWMutex
	exhibitions []domain.Exhibition
}

// NewStore seeds the store with the built-in catalogue so the feed renders immediately.
func NewStore() *Store {
	return NewStoreWith(seed.Exhibitions())
}

// NewStoreWith starts the store from the given records instead of the seed.
func NewStoreWith(items []domain.Exhibition) *Store {
	cloned := make([]domain.Exhibition, 0, len(items))
	for _, e := range items {
		cloned = append(cloned, e.Clone())
	}
	return &Store{exhibitions: cloned}
}

// ListExhibitions returns the records matching filter.
func (s *Store) ListExhibitions(_ context.Context, filter domain.ExhibitionFilter) ([]domain.Exhibition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Exhibition, 0, len(s.exhibitions))
	for _, e := range s.exhibitions {
		if filter.Match(e) {
			items = append(items, e.Clone())
		}
	}
	return items, nil
}

// GetExhibition looks up a single record.
func (s *Store) GetExhibition(_ context.Context, id string) (domain.Exhibition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Exhibition{}, fmt.Errorf("exhibition %q: %w", id, domain.ErrNotFound)
	}
	return s.exhibitions[i].Clone(), nil
}

// CreateExhibition puts a new record at the front of the listing.
func (s *Store) CreateExhibition(_ context.Context, ex domain.Exhibition) (domain.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(ex.ID) >= 0 {
		return domain.Exhibition{}, fmt.Errorf("exhibition %q already exists: %w", ex.ID, domain.ErrInvalidInput)
	}
	s.exhibitions = append([]domain.Exhibition{ex.Clone()}, s.exhibitions...)
	return ex.Clone(), nil
}

// AddComment prepends a comment and recomputes the rating under the write lock.
func (s *Store) AddComment(_ context.Context, id string, c domain.Comment) (domain.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Exhibition{}, fmt.Errorf("exhibition %q: %w", id, domain.ErrNotFound)
	}
	if err := s.exhibitions[i].AddComment(c); err != nil {
		return domain.Exhibition{}, err
	}
	return s.exhibitions[i].Clone(), nil
}

// AdjustBookmarks changes the bookmark counter of a record by delta.
func (s *Store) AdjustBookmarks(_ context.Context, id string, delta int) (domain.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Exhibition{}, fmt.Errorf("exhibition %q: %w", id, domain.ErrNotFound)
	}
	s.exhibitions[i].AdjustBookmarks(delta)
	return s.exhibitions[i].Clone(), nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.exhibitions {
		if s.exhibitions[i].ID == id {
			return i
		}
	}
	return -1
}

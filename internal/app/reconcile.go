package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

// ToggleBookmark flips a bookmark for the signed-in user and moves the
// exhibition's counter with it. It reports the new state.
func (s *Session) ToggleBookmark(ctx context.Context, exhibitionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.requireLoginLocked(ViewHome)
		return false, domain.ErrLoginRequired
	}

	if s.user.HasBookmark(exhibitionID) {
		if _, err := s.store.AdjustBookmarks(ctx, exhibitionID, -1); err != nil {
			return true, fmt.Errorf("remove bookmark: %w", err)
		}
		s.user.RemoveBookmark(exhibitionID)
		return false, nil
	}
	if err := s.bookmarkOnLocked(ctx, exhibitionID); err != nil {
		return false, err
	}
	return true, nil
}

// BatchAddBookmarks unions ids into the user's bookmarks and opens the collections
// view. Without a user the ids wait for the next login.
func (s *Session) BatchAddBookmarks(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batchAddLocked(ctx, ids)
}

// bookmarkOnLocked adds one bookmark; ids already present are left untouched.
func (s *Session) bookmarkOnLocked(ctx context.Context, exhibitionID string) error {
	if s.user.HasBookmark(exhibitionID) {
		return nil
	}
	if _, err := s.store.AdjustBookmarks(ctx, exhibitionID, 1); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	s.user.AddBookmark(exhibitionID)
	return nil
}

func (s *Session) batchAddLocked(ctx context.Context, ids []string) error {
	if s.user == nil {
		for _, id := range ids {
			if !contains(s.pending, id) {
				s.pending = append(s.pending, id)
			}
		}
		s.requireLoginLocked(ViewCollections)
		s.logger.Debug("bookmarks deferred until login", zap.Strings("ids", s.pending))
		return domain.ErrLoginRequired
	}

	u := s.user.Clone()
	if err := s.addAll(ctx, &u, ids); err != nil {
		return err
	}
	s.user = &u
	s.view = ViewCollections
	return nil
}

// addAll bookmarks ids on u, moving each counter once per newly added id.
// Unknown ids are skipped. On failure the counters already moved are put back
// and u must be discarded by the caller.
func (s *Session) addAll(ctx context.Context, u *domain.User, ids []string) error {
	var credited []string
	for _, id := range ids {
		if u.HasBookmark(id) {
			continue
		}
		_, err := s.store.AdjustBookmarks(ctx, id, 1)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("skipping bookmark for unknown exhibition", zap.String("exhibition", id))
			continue
		}
		if err != nil {
			s.uncredit(ctx, credited)
			return fmt.Errorf("add bookmark: %w", err)
		}
		u.AddBookmark(id)
		credited = append(credited, id)
	}
	return nil
}

func (s *Session) uncredit(ctx context.Context, ids []string) {
	for _, id := range ids {
		if _, err := s.store.AdjustBookmarks(ctx, id, -1); err != nil {
			s.logger.Error("failed to revert bookmark counter", zap.String("exhibition", id), zap.Error(err))
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/swipe"
)

// DeckView is everything the discover screen renders.
type DeckView struct {
	Phase      swipe.Phase         `json:"phase"`
	Layout     DeckLayout          `json:"layout"`
	Filter     swipe.Filter        `json:"filter"`
	Cursor     int                 `json:"cursor"`
	Total      int                 `json:"total"`
	Current    *domain.Exhibition  `json:"current,omitempty"`
	Next       *domain.Exhibition  `json:"next,omitempty"`
	Transform  *swipe.Transform    `json:"transform,omitempty"`
	BackCard   *swipe.Transform    `json:"backCard,omitempty"`
	Liked      []domain.Exhibition `json:"liked"`
	Summary    *swipe.Summary      `json:"summary,omitempty"`
	Candidates []domain.Exhibition `json:"candidates,omitempty"`
}

// deckHost routes the deck's requests back into the session. Its methods run
// while the session lock is already held.
type deckHost struct {
	s *Session
}

func (h deckHost) Authenticated() bool { return h.s.user != nil }

func (h deckHost) Bookmark(ctx context.Context, id string) error {
	return h.s.bookmarkOnLocked(ctx, id)
}

func (h deckHost) BatchAddBookmarks(ctx context.Context, ids []string) error {
	return h.s.batchAddLocked(ctx, ids)
}

func (h deckHost) Select(id string) {
	h.s.selectedID = id
	h.s.view = ViewDetail
}

func (h deckHost) SwitchToGrid() {
	h.s.layout = LayoutGrid
}

// deckLocked returns the session deck, starting an unfiltered pass on first use.
// The candidates are re-read from the catalogue on every call: unchanged ids only
// pick up fresh counters, any other change starts a new pass.
func (s *Session) deckLocked(ctx context.Context) (*swipe.Deck, error) {
	filter := swipe.Filter{}
	if s.deck != nil {
		filter = s.deck.Filter()
	}
	candidates, err := s.store.ListExhibitions(ctx, filter.ExhibitionFilter())
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	switch {
	case s.deck == nil:
		s.deck = swipe.NewDeck(deckHost{s: s}, filter, candidates)
	case !s.deck.Refresh(candidates):
		s.logger.Debug("catalogue changed, restarting deck", zap.Int("candidates", len(candidates)))
		s.deck.Reset(filter, candidates)
		s.layout = LayoutCards
	}
	return s.deck, nil
}

// Deck returns the discover screen as of now.
func (s *Session) Deck(ctx context.Context) (DeckView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return DeckView{}, err
	}
	return s.deckViewLocked(d), nil
}

func (s *Session) deckViewLocked(d *swipe.Deck) DeckView {
	now := s.now()
	cursor, total := d.Position(now)
	v := DeckView{
		Phase:  d.Phase(now),
		Layout: s.layout,
		Filter: d.Filter(),
		Cursor: cursor,
		Total:  total,
		Liked:  d.Liked(),
	}
	if cur, ok := d.Current(now); ok {
		t := d.Transform(now)
		v.Current, v.Transform = &cur, &t
	}
	if next, ok := d.Next(now); ok {
		back := swipe.BackCard()
		v.Next, v.BackCard = &next, &back
	}
	if v.Phase == swipe.PhaseExhausted {
		sum := d.Summary()
		v.Summary = &sum
	}
	if s.layout == LayoutGrid {
		v.Candidates = d.Candidates()
	}
	return v
}

// ApplyDeckFilter starts a fresh pass when the filter differs from the current one.
func (s *Session) ApplyDeckFilter(ctx context.Context, f swipe.Filter) (DeckView, error) {
	if f.Category != "" && !domain.IsCategory(f.Category) {
		return DeckView{}, fmt.Errorf("unknown category %q: %w", f.Category, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return DeckView{}, err
	}
	if d.Filter() != f {
		candidates, err := s.store.ListExhibitions(ctx, f.ExhibitionFilter())
		if err != nil {
			return DeckView{}, fmt.Errorf("filter deck: %w", err)
		}
		d.Reset(f, candidates)
		s.layout = LayoutCards
	}
	return s.deckViewLocked(d), nil
}

// DeckGesture feeds one pointer event to the top card.
func (s *Session) DeckGesture(ctx context.Context, ev swipe.GestureEvent) (swipe.Direction, DeckView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return swipe.DirectionNone, DeckView{}, err
	}
	dir, err := d.Handle(ctx, ev, s.now())
	return dir, s.deckViewLocked(d), err
}

// RestartDeck replays the current candidates from the first card.
func (s *Session) RestartDeck(ctx context.Context) (DeckView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return DeckView{}, err
	}
	d.Restart()
	s.layout = LayoutCards
	return s.deckViewLocked(d), nil
}

// PersistDeckLikes reconciles this pass's likes. Without a user it returns
// domain.ErrLoginRequired after parking the ids for the login round-trip.
func (s *Session) PersistDeckLikes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return err
	}
	return d.Persist(ctx, s.now())
}

func (s *Session) SwitchDeckToGrid(ctx context.Context) (DeckView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return DeckView{}, err
	}
	if err := d.SwitchToGrid(s.now()); err != nil {
		return DeckView{}, err
	}
	return s.deckViewLocked(d), nil
}

// SelectDeckCard opens the detail view of the top card.
func (s *Session) SelectDeckCard(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(ctx)
	if err != nil {
		return "", err
	}
	if err := d.Select(s.now()); err != nil {
		return "", err
	}
	return s.selectedID, nil
}

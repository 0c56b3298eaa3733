package swipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

// ExitDelay is how long a committed card animates off screen before the cursor advances.
const ExitDelay = 200 * time.Millisecond

// ErrDeckActive is returned for completion actions requested before the deck is exhausted.
var ErrDeckActive = errors.New("deck still has cards")

// Host receives the deck's outbound requests.
type Host interface {
	// Authenticated reports whether likes can be credited to a user right away.
	Authenticated() bool
	// Bookmark turns a bookmark on. It must be a no-op for ids already bookmarked.
	Bookmark(ctx context.Context, exhibitionID string) error
	// BatchAddBookmarks reconciles a pass's likes, deferring across login if needed.
	BatchAddBookmarks(ctx context.Context, exhibitionIDs []string) error
	Select(exhibitionID string)
	SwitchToGrid()
}

type Phase string

const (
	PhaseResting   Phase = "resting"
	PhaseDragging  Phase = "dragging"
	PhaseExiting   Phase = "exiting"
	PhaseExhausted Phase = "exhausted"
)

// Filter picks the deck's candidates. Zero fields match everything.
type Filter struct {
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

func (f Filter) ExhibitionFilter() domain.ExhibitionFilter {
	return domain.ExhibitionFilter{Category: f.Category, Tag: f.Tag}
}

// Summary is shown on the exhausted screen.
type Summary struct {
	LikedCount int      `json:"likedCount"`
	Thumbnails []string `json:"thumbnails"`
}

// Deck walks one pass over a candidate queue. It is not safe for concurrent use;
// the owner serialises calls.
type Deck struct {
	host       Host
	filter     Filter
	candidates []domain.Exhibition
	cursor     int
	gesture    Gesture
	exit       Direction
	exitAt     time.Time
	liked      []domain.Exhibition
}

// NewDeck starts a pass over candidates.
func NewDeck(host Host, filter Filter, candidates []domain.Exhibition) *Deck {
	d := &Deck{host: host}
	d.Reset(filter, candidates)
	return d
}

// Reset replaces the candidate queue and starts a fresh pass.
func (d *Deck) Reset(filter Filter, candidates []domain.Exhibition) {
	d.filter = filter
	d.candidates = append([]domain.Exhibition(nil), candidates...)
	d.Restart()
}

// Restart rewinds to the first candidate and forgets this pass's likes.
// Bookmarks already credited are left alone.
func (d *Deck) Restart() {
	d.cursor = 0
	d.gesture = Gesture{}
	d.exit = DirectionNone
	d.exitAt = time.Time{}
	d.liked = nil
}

// Refresh swaps in newer copies of the same records, keeping the cursor and the
// likes. It changes nothing and returns false when the ids or their order differ.
func (d *Deck) Refresh(candidates []domain.Exhibition) bool {
	if len(candidates) != len(d.candidates) {
		return false
	}
	byID := make(map[string]domain.Exhibition, len(candidates))
	for i, e := range candidates {
		if d.candidates[i].ID != e.ID {
			return false
		}
		byID[e.ID] = e
	}
	copy(d.candidates, candidates)
	for i, e := range d.liked {
		if fresh, ok := byID[e.ID]; ok {
			d.liked[i] = fresh
		}
	}
	return true
}

func (d *Deck) Filter() Filter { return d.filter }

// Settle finishes an exit animation whose delay has elapsed. It reports whether
// the cursor advanced.
func (d *Deck) Settle(now time.Time) bool {
	if d.exit == DirectionNone || now.Before(d.exitAt) {
		return false
	}
	d.cursor++
	d.exit = DirectionNone
	d.exitAt = time.Time{}
	d.gesture = Gesture{}
	return true
}

// Phase reports the controller state as of now.
func (d *Deck) Phase(now time.Time) Phase {
	d.Settle(now)
	switch {
	case d.cursor >= len(d.candidates):
		return PhaseExhausted
	case d.exit != DirectionNone:
		return PhaseExiting
	case d.gesture.Dragging:
		return PhaseDragging
	default:
		return PhaseResting
	}
}

// Handle feeds a gesture event to the top card. Events are ignored while a card
// is exiting or when the deck is exhausted. A committed swipe is returned.
func (d *Deck) Handle(ctx context.Context, ev GestureEvent, now time.Time) (Direction, error) {
	switch d.Phase(now) {
	case PhaseExiting, PhaseExhausted:
		return DirectionNone, nil
	}

	var dir Direction
	d.gesture, dir = Reduce(d.gesture, ev)
	if dir == DirectionNone {
		return DirectionNone, nil
	}
	return dir, d.commit(ctx, dir, now)
}

func (d *Deck) commit(ctx context.Context, dir Direction, now time.Time) error {
	current := d.candidates[d.cursor]
	d.exit = dir
	d.exitAt = now.Add(ExitDelay)

	if dir != DirectionRight {
		return nil
	}
	d.liked = append(d.liked, current)
	if !d.host.Authenticated() {
		return nil
	}
	if err := d.host.Bookmark(ctx, current.ID); err != nil {
		return fmt.Errorf("bookmark %q: %w", current.ID, err)
	}
	return nil
}

// Current is the top card, if any.
func (d *Deck) Current(now time.Time) (domain.Exhibition, bool) {
	d.Settle(now)
	if d.cursor >= len(d.candidates) {
		return domain.Exhibition{}, false
	}
	return d.candidates[d.cursor], true
}

// Next is the card rendered beneath the top one.
func (d *Deck) Next(now time.Time) (domain.Exhibition, bool) {
	d.Settle(now)
	if d.cursor+1 >= len(d.candidates) {
		return domain.Exhibition{}, false
	}
	return d.candidates[d.cursor+1], true
}

// Transform is the top card's current presentation.
func (d *Deck) Transform(now time.Time) Transform {
	d.Settle(now)
	return Present(d.gesture, d.exit)
}

// Position returns the cursor and the queue length.
func (d *Deck) Position(now time.Time) (int, int) {
	d.Settle(now)
	return d.cursor, len(d.candidates)
}

// Candidates is the filtered queue, used by the grid fallback view.
func (d *Deck) Candidates() []domain.Exhibition {
	return append([]domain.Exhibition(nil), d.candidates...)
}

// Liked returns this pass's likes in commit order.
func (d *Deck) Liked() []domain.Exhibition {
	return append([]domain.Exhibition(nil), d.liked...)
}

func (d *Deck) LikedIDs() []string {
	ids := make([]string, 0, len(d.liked))
	for _, e := range d.liked {
		ids = append(ids, e.ID)
	}
	return ids
}

func (d *Deck) Summary() Summary {
	s := Summary{LikedCount: len(d.liked), Thumbnails: make([]string, 0, len(d.liked))}
	for _, e := range d.liked {
		s.Thumbnails = append(s.Thumbnails, e.DisplayImage())
	}
	return s
}

// Select opens the detail view for the top card.
func (d *Deck) Select(now time.Time) error {
	current, ok := d.Current(now)
	if !ok {
		return fmt.Errorf("select: %w", domain.ErrNotFound)
	}
	d.host.Select(current.ID)
	return nil
}

// Persist hands this pass's likes to the host for reconciliation.
func (d *Deck) Persist(ctx context.Context, now time.Time) error {
	if d.Phase(now) != PhaseExhausted {
		return ErrDeckActive
	}
	return d.host.BatchAddBookmarks(ctx, d.LikedIDs())
}

// SwitchToGrid asks the host to show the same candidates as a plain list.
func (d *Deck) SwitchToGrid(now time.Time) error {
	if d.Phase(now) != PhaseExhausted {
		return ErrDeckActive
	}
	d.host.SwitchToGrid()
	return nil
}

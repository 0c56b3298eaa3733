package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/WuFaChieh/Mostra-exhibition/internal/auth"
	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/memory"
	"github.com/WuFaChieh/Mostra-exhibition/internal/swipe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct{ t time.Time }

func newClock() *clock { return &clock{t: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func catalogue(counts map[string]int) []domain.Exhibition {
	out := []domain.Exhibition{}
	for _, id := range []string{"A", "B", "C"} {
		out = append(out, domain.Exhibition{
			ID:             id,
			Title:          "展覽 " + id,
			Category:       "美術館",
			Tags:           []string{"免費參觀"},
			BookmarksCount: counts[id],
		})
	}
	return out
}

type fixture struct {
	store   *memory.Store
	clock   *clock
	session *Session
}

func newFixture(t *testing.T, template domain.User) *fixture {
	t.Helper()
	f := &fixture{
		store: memory.NewStoreWith(catalogue(map[string]int{"A": 5, "B": 0, "C": 2})),
		clock: newClock(),
	}
	f.session = NewSession("s-test", Deps{
		Store: f.store,
		Login: auth.MockLogin{Template: template},
		Now:   f.clock.Now,
	})
	return f
}

func (f *fixture) count(t *testing.T, id string) int {
	t.Helper()
	ex, err := f.store.GetExhibition(context.Background(), id)
	require.NoError(t, err)
	return ex.BookmarksCount
}

// swipe drags the top card by dx and waits for the exit animation.
func (f *fixture) swipe(t *testing.T, dx float64) {
	t.Helper()
	ctx := context.Background()
	events := []swipe.GestureEvent{
		{Kind: swipe.DragStart, Point: swipe.Point{X: 200, Y: 300}},
		{Kind: swipe.DragMove, Point: swipe.Point{X: 200 + dx, Y: 310}},
		{Kind: swipe.DragEnd},
	}
	for _, ev := range events {
		_, _, err := f.session.DeckGesture(ctx, ev)
		require.NoError(t, err)
	}
	f.clock.Advance(swipe.ExitDelay)
}

func TestDeckLikesSurviveLogin(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1", Name: "王小明"})
	ctx := context.Background()

	f.swipe(t, 150)
	f.swipe(t, -150)
	f.swipe(t, 150)

	view, err := f.session.Deck(ctx)
	require.NoError(t, err)
	assert.Equal(t, swipe.PhaseExhausted, view.Phase)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 2, view.Summary.LikedCount)

	err = f.session.PersistDeckLikes(ctx)
	require.ErrorIs(t, err, domain.ErrLoginRequired)

	snap := f.session.Snapshot()
	assert.Equal(t, ViewLogin, snap.View)
	assert.Equal(t, ViewCollections, snap.Redirect)
	assert.Equal(t, []string{"A", "C"}, snap.Pending)
	assert.Equal(t, 5, f.count(t, "A"), "no counter moves before login")

	user, err := f.session.Login(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "C"}, user.BookmarkedExhibitionIDs)

	snap = f.session.Snapshot()
	assert.Equal(t, ViewCollections, snap.View)
	assert.Empty(t, snap.Redirect)
	assert.Empty(t, snap.Pending)
	assert.Equal(t, 6, f.count(t, "A"))
	assert.Equal(t, 0, f.count(t, "B"))
	assert.Equal(t, 3, f.count(t, "C"))
}

func TestDeckLikesWhileAuthenticated(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1", BookmarkedExhibitionIDs: []string{"A"}})
	ctx := context.Background()

	_, err := f.session.Login(ctx)
	require.NoError(t, err)

	f.swipe(t, 150)
	f.swipe(t, -150)
	f.swipe(t, 150)

	assert.Equal(t, 5, f.count(t, "A"), "already bookmarked")
	assert.Equal(t, 3, f.count(t, "C"))

	require.NoError(t, f.session.PersistDeckLikes(ctx))
	assert.Equal(t, 5, f.count(t, "A"))
	assert.Equal(t, 3, f.count(t, "C"))

	user, ok := f.session.User()
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"A", "C"}, user.BookmarkedExhibitionIDs)
	assert.Equal(t, ViewCollections, f.session.Snapshot().View)
}

func TestRestartDeckKeepsCounters(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	f.swipe(t, 150)
	f.swipe(t, 150)
	f.swipe(t, 150)

	view, err := f.session.RestartDeck(ctx)
	require.NoError(t, err)
	assert.Equal(t, swipe.PhaseResting, view.Phase)
	assert.Equal(t, 0, view.Cursor)
	assert.Empty(t, view.Liked)
	assert.Equal(t, 5, f.count(t, "A"))
	assert.Empty(t, f.session.Snapshot().Pending)
}

func TestDeckCompletionActionsNeedExhaustedDeck(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	require.ErrorIs(t, f.session.PersistDeckLikes(ctx), swipe.ErrDeckActive)
	_, err := f.session.SwitchDeckToGrid(ctx)
	require.ErrorIs(t, err, swipe.ErrDeckActive)

	f.swipe(t, -150)
	f.swipe(t, -150)
	f.swipe(t, -150)

	view, err := f.session.SwitchDeckToGrid(ctx)
	require.NoError(t, err)
	assert.Equal(t, LayoutGrid, view.Layout)
	assert.Len(t, view.Candidates, 3)
}

func TestDeckFilterResetsOnlyOnChange(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	f.swipe(t, 150)

	view, err := f.session.ApplyDeckFilter(ctx, swipe.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cursor)

	view, err = f.session.ApplyDeckFilter(ctx, swipe.Filter{Tag: "免費參觀"})
	require.NoError(t, err)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, 3, view.Total)
	assert.Empty(t, view.Liked)

	view, err = f.session.ApplyDeckFilter(ctx, swipe.Filter{Category: "博物館"})
	require.NoError(t, err)
	assert.Equal(t, swipe.PhaseExhausted, view.Phase)

	_, err = f.session.ApplyDeckFilter(ctx, swipe.Filter{Category: "太空站"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSelectDeckCardOpensDetail(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})

	id, err := f.session.SelectDeckCard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", id)

	snap := f.session.Snapshot()
	assert.Equal(t, ViewDetail, snap.View)
	assert.Equal(t, "A", snap.SelectedID)
}

func TestToggleBookmark(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	_, err := f.session.ToggleBookmark(ctx, "B")
	require.ErrorIs(t, err, domain.ErrLoginRequired)
	assert.Equal(t, ViewLogin, f.session.Snapshot().View)
	assert.Equal(t, ViewHome, f.session.Snapshot().Redirect)

	_, err = f.session.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewHome, f.session.Snapshot().View)

	on, err := f.session.ToggleBookmark(ctx, "B")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 1, f.count(t, "B"))

	on, err = f.session.ToggleBookmark(ctx, "B")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, 0, f.count(t, "B"))

	_, err = f.session.ToggleBookmark(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddCommentRequiresLoginAndText(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1", Name: "王小明"})
	ctx := context.Background()

	_, err := f.session.AddComment(ctx, "A", domain.AddCommentInput{Rating: 4, Text: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.session.AddComment(ctx, "A", domain.AddCommentInput{Rating: 4, Text: "很棒"})
	require.ErrorIs(t, err, domain.ErrLoginRequired)
	snap := f.session.Snapshot()
	assert.Equal(t, ViewDetail, snap.Redirect)
	assert.Equal(t, "A", snap.SelectedID)

	_, err = f.session.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewDetail, f.session.Snapshot().View)

	ex, err := f.session.AddComment(ctx, "A", domain.AddCommentInput{Rating: 4, Text: "很棒"})
	require.NoError(t, err)
	require.Len(t, ex.Comments, 1)
	assert.Equal(t, "王小明", ex.Comments[0].UserName)
	assert.Equal(t, 4.0, ex.Rating)

	_, err = f.session.AddComment(ctx, "A", domain.AddCommentInput{Rating: 6, Text: "太棒"})
	require.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestSubmitExhibition(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()
	in := domain.SubmitExhibitionInput{Title: "新展", Category: "博物館"}

	_, err := f.session.SubmitExhibition(ctx, in)
	require.ErrorIs(t, err, domain.ErrLoginRequired)
	assert.Equal(t, ViewSubmit, f.session.Snapshot().Redirect)

	_, err = f.session.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewSubmit, f.session.Snapshot().View)

	_, before := f.session.Notifications()

	created, err := f.session.SubmitExhibition(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.KindMinor, created.Kind)
	assert.Equal(t, domain.PriceFree, created.PriceMode)
	assert.NotEmpty(t, created.ImageURL)
	assert.Equal(t, ViewHome, f.session.Snapshot().View)

	all, err := f.store.ListExhibitions(ctx, domain.ExhibitionFilter{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, all[0].ID)

	notes, unread := f.session.Notifications()
	assert.Equal(t, before+1, unread)
	assert.Equal(t, domain.NotificationSuccess, notes[0].Type)

	_, err = f.session.SubmitExhibition(ctx, domain.SubmitExhibitionInput{Title: " "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNavigateGuards(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	v, err := f.session.Navigate(ViewProfile, "")
	require.ErrorIs(t, err, domain.ErrLoginRequired)
	assert.Equal(t, ViewLogin, v)
	assert.Empty(t, f.session.Snapshot().Redirect)

	_, err = f.session.Navigate(View("nowhere"), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	v, err = f.session.Navigate(ViewDiscover, "")
	require.NoError(t, err)
	assert.Equal(t, ViewDiscover, v)

	_, err = f.session.Login(ctx)
	require.NoError(t, err)
	v, err = f.session.Navigate(ViewProfile, "")
	require.NoError(t, err)
	assert.Equal(t, ViewProfile, v)

	f.session.Logout()
	snap := f.session.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Equal(t, ViewHome, snap.View)
}

func TestNotificationsMarkRead(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})

	_, unread := f.session.Notifications()
	assert.Positive(t, unread)

	f.session.MarkNotificationsRead()
	_, unread = f.session.Notifications()
	assert.Zero(t, unread)
}

func TestCollectionsFollowCatalogueOrder(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1", BookmarkedExhibitionIDs: []string{"C", "A"}})
	ctx := context.Background()

	_, err := f.session.Collections(ctx)
	require.ErrorIs(t, err, domain.ErrLoginRequired)

	_, err = f.session.Login(ctx)
	require.NoError(t, err)
	items, err := f.session.Collections(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "C", items[1].ID)
}

type fixedInsight string

func (f fixedInsight) CuratorInsight(context.Context, domain.Exhibition) string { return string(f) }

func TestGenerateInsight(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	text, err := f.session.GenerateInsight(ctx, fixedInsight("值得一看"), "A")
	require.NoError(t, err)
	assert.Equal(t, "值得一看", text)
	assert.Equal(t, InsightState{ExhibitionID: "A", Text: "值得一看"}, f.session.Snapshot().Insight)

	_, err = f.session.GenerateInsight(ctx, fixedInsight("x"), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrySweepsIdleSessions(t *testing.T) {
	c := newClock()
	r := NewRegistry(Deps{Store: memory.NewStoreWith(nil), Login: auth.MockLogin{}, Now: c.Now}, time.Hour)

	stale := r.Open()
	c.Advance(45 * time.Minute)
	fresh := r.Open()
	c.Advance(30 * time.Minute)

	assert.Equal(t, 1, r.Sweep(c.Now()))
	_, err := r.Get(stale.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)
	got, err := r.Get(fresh.ID())
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	r := NewRegistry(Deps{Store: memory.NewStoreWith(nil)}, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, time.Millisecond) }()
	cancel()
	require.NoError(t, <-done)
}

func TestDeckFollowsCatalogueChanges(t *testing.T) {
	f := newFixture(t, domain.User{ID: "u1"})
	ctx := context.Background()

	_, err := f.session.Login(ctx)
	require.NoError(t, err)

	f.swipe(t, 150)
	view, err := f.session.Deck(ctx)
	require.NoError(t, err)
	require.Len(t, view.Liked, 1)
	assert.Equal(t, 6, view.Liked[0].BookmarksCount)
	assert.Equal(t, 1, view.Cursor)

	created, err := f.session.SubmitExhibition(ctx, domain.SubmitExhibitionInput{Title: "新展", Category: "美術館"})
	require.NoError(t, err)

	view, err = f.session.Deck(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, 0, view.Cursor)
	assert.Empty(t, view.Liked)
	require.NotNil(t, view.Current)
	assert.Equal(t, created.ID, view.Current.ID)
	require.NotNil(t, view.Next)
	assert.Equal(t, 6, view.Next.BookmarksCount)
}

type flakyStore struct {
	*memory.Store
	failOn string
}

func (s flakyStore) AdjustBookmarks(ctx context.Context, id string, delta int) (domain.Exhibition, error) {
	if id == s.failOn {
		return domain.Exhibition{}, errors.New("disk full")
	}
	return s.Store.AdjustBookmarks(ctx, id, delta)
}

func TestLoginLeavesSessionUntouchedWhenMergeFails(t *testing.T) {
	store := memory.NewStoreWith(catalogue(map[string]int{"A": 5, "C": 2}))
	c := newClock()
	sess := NewSession("s-flaky", Deps{
		Store: flakyStore{Store: store, failOn: "C"},
		Login: auth.MockLogin{Template: domain.User{ID: "u1"}},
		Now:   c.Now,
	})
	ctx := context.Background()

	require.ErrorIs(t, sess.BatchAddBookmarks(ctx, []string{"A", "C"}), domain.ErrLoginRequired)

	_, err := sess.Login(ctx)
	require.Error(t, err)

	snap := sess.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Equal(t, ViewLogin, snap.View)
	assert.Equal(t, ViewCollections, snap.Redirect)
	assert.Equal(t, []string{"A", "C"}, snap.Pending)

	a, err := store.GetExhibition(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 5, a.BookmarksCount, "credited counter is reverted")
}

func TestBatchAddKeepsUserWhenStoreFails(t *testing.T) {
	store := memory.NewStoreWith(catalogue(map[string]int{"A": 5, "C": 2}))
	sess := NewSession("s-flaky", Deps{
		Store: flakyStore{Store: store, failOn: "C"},
		Login: auth.MockLogin{Template: domain.User{ID: "u1"}},
	})
	ctx := context.Background()

	_, err := sess.Login(ctx)
	require.NoError(t, err)
	require.Error(t, sess.BatchAddBookmarks(ctx, []string{"A", "C"}))

	u, ok := sess.User()
	require.True(t, ok)
	assert.Empty(t, u.BookmarkedExhibitionIDs)
	a, err := store.GetExhibition(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 5, a.BookmarksCount)
}

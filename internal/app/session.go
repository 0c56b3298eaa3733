package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/seed"
	"github.com/WuFaChieh/Mostra-exhibition/internal/swipe"
)

// Deps are the collaborators shared by all sessions.
type Deps struct {
	Store  Store
	Login  Authenticator
	Logger *zap.Logger
	Now    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Session is the state of one client: who is signed in, where they are, and what
// they accumulated while browsing. Intents are serialised by mu.
type Session struct {
	id     string
	store  Store
	auth   Authenticator
	logger *zap.Logger
	now    func() time.Time

	mu            sync.Mutex
	user          *domain.User
	view          View
	selectedID    string
	redirect      View
	pending       []string
	notifications []domain.Notification
	deck          *swipe.Deck
	layout        DeckLayout
	insight       InsightState
	lastSeen      time.Time
}

// InsightState is the curator insight panel of the detail view.
type InsightState struct {
	ExhibitionID string `json:"exhibitionId,omitempty"`
	Loading      bool   `json:"loading"`
	Text         string `json:"text,omitempty"`
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	ID            string       `json:"id"`
	User          *domain.User `json:"user"`
	Authenticated bool         `json:"authenticated"`
	View          View         `json:"view"`
	SelectedID    string       `json:"selectedId,omitempty"`
	Redirect      View         `json:"redirectAfterLogin,omitempty"`
	Pending       []string     `json:"pendingBookmarkIds"`
	Insight       InsightState `json:"insight"`
	UnreadCount   int          `json:"unreadCount"`
}

// NewSession creates an anonymous session on the home view.
func NewSession(id string, deps Deps) *Session {
	deps = deps.withDefaults()
	return &Session{
		id:            id,
		store:         deps.Store,
		auth:          deps.Login,
		logger:        deps.Logger.With(zap.String("session", id)),
		now:           deps.Now,
		view:          ViewHome,
		notifications: seed.Notifications(),
		layout:        LayoutCards,
		lastSeen:      deps.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		Authenticated: s.user != nil,
		View:          s.view,
		SelectedID:    s.selectedID,
		Redirect:      s.redirect,
		Pending:       append([]string{}, s.pending...),
		Insight:       s.insight,
		UnreadCount:   s.unreadLocked(),
	}
	if s.user != nil {
		u := s.user.Clone()
		snap.User = &u
	}
	return snap
}

// User returns a copy of the signed-in user.
func (s *Session) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return s.user.Clone(), true
}

// Login runs the mock login, then merges any pending bookmarks and returns to the
// view that asked for the login.
func (s *Session) Login(ctx context.Context) (domain.User, error) {
	if u, ok := s.User(); ok {
		return u, nil
	}

	// the login delay runs outside the lock so reads stay responsive
	user, err := s.auth.Login(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return s.user.Clone(), nil
	}
	// nothing is committed to the session until the pending ids are merged
	if err := s.addAll(ctx, &user, s.pending); err != nil {
		return domain.User{}, fmt.Errorf("merge pending bookmarks: %w", err)
	}
	s.user = &user
	s.pending = nil

	target := s.redirect
	if target == "" {
		target = ViewHome
	}
	s.view = target
	s.redirect = ""

	s.logger.Info("session logged in", zap.String("user", user.ID), zap.String("view", string(target)))
	return s.user.Clone(), nil
}

// Logout drops the user and anything waiting for a login.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.pending = nil
	s.redirect = ""
	s.view = ViewHome
	s.logger.Info("session logged out")
}

// Navigate switches view. Submitting and the profile need a user; submit comes back
// after login, profile does not.
func (s *Session) Navigate(target View, exhibitionID string) (View, error) {
	if !target.Valid() {
		return "", fmt.Errorf("unknown view %q: %w", target, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if exhibitionID != "" {
		s.selectedID = exhibitionID
	}
	switch {
	case target == ViewSubmit && s.user == nil:
		s.requireLoginLocked(ViewSubmit)
		return s.view, domain.ErrLoginRequired
	case target == ViewProfile && s.user == nil:
		s.view = ViewLogin
		return s.view, domain.ErrLoginRequired
	}
	s.view = target
	return s.view, nil
}

// requireLoginLocked sends the session to login, coming back to next afterwards.
func (s *Session) requireLoginLocked(next View) {
	s.redirect = next
	s.view = ViewLogin
}

// AddComment posts a review as the current user.
func (s *Session) AddComment(ctx context.Context, exhibitionID string, in domain.AddCommentInput) (domain.Exhibition, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return domain.Exhibition{}, fmt.Errorf("comment text is required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.selectedID = exhibitionID
		s.requireLoginLocked(ViewDetail)
		return domain.Exhibition{}, domain.ErrLoginRequired
	}

	c := domain.Comment{
		ID:         uuid.NewString(),
		UserID:     s.user.ID,
		UserName:   s.user.Name,
		UserAvatar: s.user.Avatar,
		Rating:     in.Rating,
		Text:       text,
		Date:       "剛剛",
	}
	ex, err := s.store.AddComment(ctx, exhibitionID, c)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("add comment: %w", err)
	}
	return ex, nil
}

// SubmitExhibition publishes a user listing to the front of the catalogue.
func (s *Session) SubmitExhibition(ctx context.Context, in domain.SubmitExhibitionInput) (domain.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.requireLoginLocked(ViewSubmit)
		return domain.Exhibition{}, domain.ErrLoginRequired
	}

	if strings.TrimSpace(in.Title) == "" {
		return domain.Exhibition{}, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if in.Category == "" {
		in.Category = domain.Categories[0]
	}
	if !domain.IsCategory(in.Category) {
		return domain.Exhibition{}, fmt.Errorf("unknown category %q: %w", in.Category, domain.ErrInvalidInput)
	}
	price := domain.PriceFree
	if in.PriceMode == domain.PricePaid {
		price = domain.PricePaid
	}
	image := in.ImageURL
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/id/%d/800/600", rand.IntN(100))
	}

	now := s.now()
	ex := domain.Exhibition{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       in.Title,
		Artist:      in.Artist,
		DateRange:   in.DateRange,
		Description: in.Description,
		ImageURL:    image,
		Location:    in.Location,
		Category:    in.Category,
		Kind:        domain.KindMinor,
		PriceMode:   price,
		Tags:        []string{"網友推薦", "最新展訊"},
		Comments:    []domain.Comment{},
		SourceURL:   in.SourceURL,
		CreatedAt:   now,
	}
	created, err := s.store.CreateExhibition(ctx, ex)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("submit exhibition: %w", err)
	}

	s.notifications = append([]domain.Notification{{
		ID:        uuid.NewString(),
		Title:     "發布成功",
		Message:   fmt.Sprintf("您的展訊 \"%s\" 已成功上架。", created.Title),
		Timestamp: "剛剛",
		Type:      domain.NotificationSuccess,
	}}, s.notifications...)
	s.view = ViewHome
	s.logger.Info("exhibition submitted", zap.String("exhibition", created.ID))
	return created, nil
}

// Collections lists the user's bookmarked exhibitions in catalogue order.
func (s *Session) Collections(ctx context.Context) ([]domain.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.requireLoginLocked(ViewCollections)
		return nil, domain.ErrLoginRequired
	}
	all, err := s.store.ListExhibitions(ctx, domain.ExhibitionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	items := make([]domain.Exhibition, 0, len(s.user.BookmarkedExhibitionIDs))
	for _, e := range all {
		if s.user.HasBookmark(e.ID) {
			items = append(items, e)
		}
	}
	return items, nil
}

func (s *Session) Notifications() ([]domain.Notification, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...), s.unreadLocked()
}

func (s *Session) MarkNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

func (s *Session) unreadLocked() int {
	n := 0
	for _, note := range s.notifications {
		if !note.Read {
			n++
		}
	}
	return n
}

// InsightGenerator produces curator text for an exhibition. It never fails.
type InsightGenerator interface {
	CuratorInsight(ctx context.Context, ex domain.Exhibition) string
}

// GenerateInsight fills the insight panel for an exhibition. The loading flag is
// visible in snapshots while the generator runs.
func (s *Session) GenerateInsight(ctx context.Context, gen InsightGenerator, exhibitionID string) (string, error) {
	ex, err := s.store.GetExhibition(ctx, exhibitionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.insight = InsightState{ExhibitionID: exhibitionID, Loading: true}
	s.mu.Unlock()

	text := gen.CuratorInsight(ctx, ex)

	s.mu.Lock()
	defer s.mu.Unlock()
	// a newer request for another exhibition owns the panel now
	if s.insight.ExhibitionID == exhibitionID {
		s.insight = InsightState{ExhibitionID: exhibitionID, Text: text}
	}
	return text, nil
}

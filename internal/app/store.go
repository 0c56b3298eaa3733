// Package app holds per-session application state. Every mutation of the current
// user, the catalogue counters, navigation and the discovery deck goes through a
// named intent method on Session.
package app

import (
	"context"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

// Store abstracts the catalogue so memory and SQLite backends are interchangeable.
type Store interface {
	ListExhibitions(ctx context.Context, filter domain.ExhibitionFilter) ([]domain.Exhibition, error)
	GetExhibition(ctx context.Context, id string) (domain.Exhibition, error)
	CreateExhibition(ctx context.Context, ex domain.Exhibition) (domain.Exhibition, error)
	AddComment(ctx context.Context, id string, c domain.Comment) (domain.Exhibition, error)
	AdjustBookmarks(ctx context.Context, id string, delta int) (domain.Exhibition, error)
}

// Authenticator completes a login and returns the signed-in user.
type Authenticator interface {
	Login(ctx context.Context) (domain.User, error)
}

type View string

const (
	ViewHome        View = "home"
	ViewCollections View = "collections"
	ViewMinor       View = "small_exhibitions"
	ViewCategories  View = "categories"
	ViewDiscover    View = "discover"
	ViewDetail      View = "detail"
	ViewLogin       View = "login"
	ViewSubmit      View = "submit"
	ViewProfile     View = "profile"
)

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewCollections, ViewMinor, ViewCategories, ViewDiscover,
		ViewDetail, ViewLogin, ViewSubmit, ViewProfile:
		return true
	}
	return false
}

// DeckLayout is how the discover view renders its candidates.
type DeckLayout string

const (
	LayoutCards DeckLayout = "cards"
	LayoutGrid  DeckLayout = "grid"
)

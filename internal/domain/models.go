package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidInput  = errors.New("invalid input")
	ErrLoginRequired = errors.New("login required")
)

// FallbackImageURL replaces any exhibition image that is missing or fails to load.
const FallbackImageURL = "https://images.unsplash.com/photo-1518998053901-5348d3969105?q=80&w=800&auto=format&fit=crop"

// Kind partitions the catalogue into the main feed and the secondary browse list.
type Kind string

const (
	KindMajor Kind = "major"
	KindMinor Kind = "minor"
)

type PriceMode string

const (
	PriceFree PriceMode = "free"
	PricePaid PriceMode = "paid"
)

// Categories is the fixed label set used by the category browser and the deck filter.
var Categories = []string{"美術館", "博物館", "親子互動", "文創園區", "歷史人文"}

// IsCategory reports whether name is one of Categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Exhibition is a single listing in the catalogue.
type Exhibition struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Artist         string    `json:"artist"`
	DateRange      string    `json:"dateRange"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Kind           Kind      `json:"type"`
	PriceMode      PriceMode `json:"priceMode"`
	Tags           []string  `json:"tags"`
	Comments       []Comment `json:"comments"`
	Rating         float64   `json:"rating"`
	SourceURL      string    `json:"sourceUrl"`
	BookmarksCount int       `json:"bookmarksCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Comment is a rated review. Author fields are a snapshot taken when it was posted.
type Comment struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Date       string `json:"date"`
}

// User is the signed-in actor of a session.
type User struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Email                   string   `json:"email"`
	Avatar                  string   `json:"avatar"`
	BookmarkedExhibitionIDs []string `json:"bookmarkedExhibitionIds"`
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationAlert   NotificationType = "alert"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Timestamp string           `json:"timestamp"`
	Type      NotificationType `json:"type"`
}

// SubmitExhibitionInput is the payload of the listing submission form.
type SubmitExhibitionInput struct {
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	DateRange   string    `json:"dateRange"`
	SourceURL   string    `json:"sourceUrl"`
	PriceMode   PriceMode `json:"priceMode"`
}

// AddCommentInput is the payload for posting a review.
type AddCommentInput struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ExhibitionFilter narrows a listing. Zero values match everything.
type ExhibitionFilter struct {
	Kind     Kind   `json:"kind"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

// Match reports whether e passes the filter.
func (f ExhibitionFilter) Match(e Exhibition) bool {
	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Tag != "" && !e.HasTag(f.Tag) {
		return false
	}
	return true
}

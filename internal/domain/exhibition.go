package domain

import (
	"fmt"
	"strings"
)

// AddComment prepends c and recomputes Rating as the mean of all comment ratings.
func (e *Exhibition) AddComment(c Comment) error {
	if c.Rating < 1 || c.Rating > 5 {
		return fmt.Errorf("comment %q: %w", c.ID, ErrInvalidRating)
	}
	e.Comments = append([]Comment{c}, e.Comments...)
	e.Rating = MeanRating(e.Comments)
	return nil
}

// MeanRating is sum(rating)/count, or 0 for no comments.
func MeanRating(comments []Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	total := 0
	for _, c := range comments {
		total += c.Rating
	}
	return float64(total) / float64(len(comments))
}

// AdjustBookmarks applies delta to BookmarksCount, never going below zero.
func (e *Exhibition) AdjustBookmarks(delta int) {
	e.BookmarksCount += delta
	if e.BookmarksCount < 0 {
		e.BookmarksCount = 0
	}
}

func (e Exhibition) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayImage returns the image URL, or FallbackImageURL when none is set.
func (e Exhibition) DisplayImage() string {
	if strings.TrimSpace(e.ImageURL) == "" {
		return FallbackImageURL
	}
	return e.ImageURL
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (e Exhibition) Clone() Exhibition {
	e.Tags = append([]string(nil), e.Tags...)
	e.Comments = append([]Comment(nil), e.Comments...)
	return e
}

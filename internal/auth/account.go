package auth

import (
	"context"
	"time"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

// DefaultAccount is the template every mock login instantiates.
var DefaultAccount = domain.User{
	ID:                      "u1",
	Name:                    "王小明",
	Email:                   "ming@example.com",
	Avatar:                  "https://picsum.photos/id/64/200/200",
	BookmarkedExhibitionIDs: []string{"e1", "e5", "e7"},
}

// MockLogin completes after a fixed delay with a fresh copy of the template.
type MockLogin struct {
	Template domain.User
	Delay    time.Duration
}

// Login waits out the delay and returns the account. It gives up if ctx ends first.
func (m MockLogin) Login(ctx context.Context) (domain.User, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return domain.User{}, ctx.Err()
		}
	}
	return m.Template.Clone(), nil
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	tok, err := iss.Issue("s-1", "u1")
	require.NoError(t, err)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionID)
	assert.Equal(t, "u1", claims.UserID)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	tok, err := NewIssuer("one", time.Hour).Issue("s-1", "")
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewIssuer("one", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	base := time.Now()
	iss.now = func() time.Time { return base }
	tok, err := iss.Issue("s-1", "")
	require.NoError(t, err)

	iss.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = iss.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMockLoginReturnsIndependentCopies(t *testing.T) {
	m := MockLogin{Template: DefaultAccount}

	a, err := m.Login(context.Background())
	require.NoError(t, err)
	a.AddBookmark("e9")

	b, err := m.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e5", "e7"}, b.BookmarkedExhibitionIDs)
}

func TestMockLoginHonoursContext(t *testing.T) {
	m := MockLogin{Template: DefaultAccount, Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Login(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

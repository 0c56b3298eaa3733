package swipe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func dragging(dx, dy float64) Gesture {
	return Gesture{Dragging: true, Offset: Point{X: dx, Y: dy}}
}

func TestPresentBadges(t *testing.T) {
	tests := []struct {
		dx         float64
		like, nope float64
	}{
		{0, 0, 0},
		{40, 0, 0},
		{50, 0, 0},
		{-50, 0, 0},
		{60, 10.0 / 150, 0},
		{-60, 0, 10.0 / 150},
		{200, 1, 0},
		{900, 1, 0},
		{-900, 0, 1},
	}
	for _, tt := range tests {
		got := Present(dragging(tt.dx, 0), DirectionNone)
		assert.InDelta(t, tt.like, got.LikeOpacity, 1e-9, "like at dx=%v", tt.dx)
		assert.InDelta(t, tt.nope, got.NopeOpacity, 1e-9, "nope at dx=%v", tt.dx)
	}

	assert.InDelta(t, 0.067, Present(dragging(60, 0), DirectionNone).LikeOpacity, 0.001)
}

func TestPresentWhileDragging(t *testing.T) {
	got := Present(dragging(80, -40), DirectionNone)

	want := Transform{
		TranslateX:  80,
		TranslateY:  -4,
		RotateDeg:   8,
		Scale:       1,
		LikeOpacity: 30.0 / 150,
		Interactive: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Present() mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentExitPinsTransform(t *testing.T) {
	right := Present(Gesture{Offset: Point{X: 130, Y: 20}}, DirectionRight)
	assert.Equal(t, ExitTranslation, right.TranslateX)
	assert.Equal(t, ExitRotation, right.RotateDeg)
	assert.Equal(t, SettleDuration.Milliseconds(), right.TransitionMs)
	assert.False(t, right.Interactive)

	left := Present(Gesture{Offset: Point{X: -130}}, DirectionLeft)
	assert.Equal(t, -ExitTranslation, left.TranslateX)
	assert.Equal(t, -ExitRotation, left.RotateDeg)
}

func TestPresentRestingEases(t *testing.T) {
	got := Present(Gesture{}, DirectionNone)
	assert.Zero(t, got.TranslateX)
	assert.Zero(t, got.RotateDeg)
	assert.Equal(t, SettleDuration.Milliseconds(), got.TransitionMs)
	assert.Zero(t, Present(dragging(10, 0), DirectionNone).TransitionMs)
}

func TestBackCardIsNotInteractive(t *testing.T) {
	back := BackCard()
	assert.False(t, back.Interactive)
	assert.Less(t, back.Scale, 1.0)
	assert.Greater(t, back.TranslateY, 0.0)
}

package swipe

import (
	"math"
	"time"
)

const (
	RotationPerUnit = 0.1
	VerticalDamping = 0.1
	ExitTranslation = 1000.0
	ExitRotation    = 20.0

	BadgeStart = 50.0
	BadgeSpan  = 150.0

	SettleDuration = 300 * time.Millisecond

	backCardScale   = 0.95
	backCardOffsetY = 12.0
)

// Transform is what a renderer needs to draw one card.
type Transform struct {
	TranslateX   float64 `json:"translateX"`
	TranslateY   float64 `json:"translateY"`
	RotateDeg    float64 `json:"rotateDeg"`
	Scale        float64 `json:"scale"`
	LikeOpacity  float64 `json:"likeOpacity"`
	NopeOpacity  float64 `json:"nopeOpacity"`
	TransitionMs int64   `json:"transitionMs"` // zero while the pointer is down
	Interactive  bool    `json:"interactive"`
}

// Present maps tracker state and exit direction to the top card's transform.
func Present(g Gesture, exit Direction) Transform {
	t := Transform{
		TranslateX:  g.Offset.X,
		TranslateY:  g.Offset.Y * VerticalDamping,
		RotateDeg:   g.Offset.X * RotationPerUnit,
		Scale:       1,
		LikeOpacity: badgeOpacity(g.Offset.X),
		NopeOpacity: badgeOpacity(-g.Offset.X),
		Interactive: exit == DirectionNone,
	}
	switch exit {
	case DirectionLeft:
		t.TranslateX, t.RotateDeg = -ExitTranslation, -ExitRotation
	case DirectionRight:
		t.TranslateX, t.RotateDeg = ExitTranslation, ExitRotation
	}
	if exit != DirectionNone || !g.Dragging {
		t.TransitionMs = SettleDuration.Milliseconds()
	}
	return t
}

// BackCard is the static transform of the next card shown beneath the top one.
func BackCard() Transform {
	return Transform{
		TranslateY:   backCardOffsetY,
		Scale:        backCardScale,
		TransitionMs: SettleDuration.Milliseconds(),
	}
}

func badgeOpacity(dx float64) float64 {
	if dx <= BadgeStart {
		return 0
	}
	return math.Min(1, (dx-BadgeStart)/BadgeSpan)
}

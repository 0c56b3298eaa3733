// Package swipe implements the discovery deck: a pure gesture reducer, the card
// transform it drives, and the controller that walks a queue of exhibitions.
package swipe

// SwipeThreshold is the horizontal distance a release must reach to commit a swipe.
const SwipeThreshold = 100.0

// Direction is the outcome of a released drag.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText lets directions appear as strings in JSON payloads.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

type EventKind int

const (
	DragStart EventKind = iota
	DragMove
	DragEnd
)

// GestureEvent is one pointer sample. DragEnd covers both release and pointer-leave.
type GestureEvent struct {
	Kind  EventKind
	Point Point
}

// Gesture is the tracker state for the topmost card.
type Gesture struct {
	Dragging bool  `json:"dragging"`
	Start    Point `json:"start"`
	Offset   Point `json:"offset"`
}

// Reduce applies ev to g. The returned direction is non-None only for a DragEnd
// whose horizontal offset reached SwipeThreshold.
func Reduce(g Gesture, ev GestureEvent) (Gesture, Direction) {
	switch ev.Kind {
	case DragStart:
		return Gesture{Dragging: true, Start: ev.Point}, DirectionNone
	case DragMove:
		if !g.Dragging {
			return g, DirectionNone
		}
		g.Offset = ev.Point.Sub(g.Start)
		return g, DirectionNone
	case DragEnd:
		if !g.Dragging {
			return g, DirectionNone
		}
		g.Dragging = false
		switch {
		case g.Offset.X >= SwipeThreshold:
			return g, DirectionRight
		case g.Offset.X <= -SwipeThreshold:
			return g, DirectionLeft
		}
		g.Offset = Point{}
		return g, DirectionNone
	}
	return g, DirectionNone
}

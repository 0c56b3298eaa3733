package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/WuFaChieh/Mostra-exhibition/internal/swipe"
)

// gestureRequest is one pointer sample from the client.
type gestureRequest struct {
	Type string  `json:"type"` // start, move, end
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (r gestureRequest) event() (swipe.GestureEvent, error) {
	ev := swipe.GestureEvent{Point: swipe.Point{X: r.X, Y: r.Y}}
	switch r.Type {
	case "start":
		ev.Kind = swipe.DragStart
	case "move":
		ev.Kind = swipe.DragMove
	case "end", "leave":
		ev.Kind = swipe.DragEnd
	default:
		return ev, fmt.Errorf("unknown gesture type %q", r.Type)
	}
	return ev, nil
}

func (s *Server) handleDeck(c *fiber.Ctx) error {
	view, err := sessionFrom(c).Deck(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, view, nil)
}

func (s *Server) handleDeckFilter(c *fiber.Ctx) error {
	var payload swipe.Filter
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	view, err := sessionFrom(c).ApplyDeckFilter(c.UserContext(), payload)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, view, nil)
}

func (s *Server) handleDeckGesture(c *fiber.Ctx) error {
	var payload gestureRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	ev, err := payload.event()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	dir, view, err := sessionFrom(c).DeckGesture(c.UserContext(), ev)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, view, fiber.Map{"committed": dir})
}

func (s *Server) handleDeckSelect(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	if _, err := sess.SelectDeckCard(c.UserContext()); err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, sess.Snapshot(), nil)
}

func (s *Server) handleDeckRestart(c *fiber.Ctx) error {
	view, err := sessionFrom(c).RestartDeck(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, view, nil)
}

func (s *Server) handleDeckPersist(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	if err := sess.PersistDeckLikes(c.UserContext()); err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, sess.Snapshot(), nil)
}

func (s *Server) handleDeckGrid(c *fiber.Ctx) error {
	view, err := sessionFrom(c).SwitchDeckToGrid(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, view, nil)
}

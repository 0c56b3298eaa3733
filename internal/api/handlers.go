package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/app"
	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

func (s *Server) handleOpenSession(c *fiber.Ctx) error {
	sess := s.sessions.Open()
	token, err := s.tokens.Issue(sess.ID(), "")
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"token": token, "session": sess.Snapshot()}, nil)
}

func (s *Server) handleGetSession(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, sessionFrom(c).Snapshot(), nil)
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	user, err := sess.Login(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	token, err := s.tokens.Issue(sess.ID(), user.ID)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"token": token, "session": sess.Snapshot()}, nil)
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	sess.Logout()
	token, err := s.tokens.Issue(sess.ID(), "")
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"token": token, "session": sess.Snapshot()}, nil)
}

type navigateRequest struct {
	View         app.View `json:"view"`
	ExhibitionID string   `json:"exhibitionId"`
}

func (s *Server) handleNavigate(c *fiber.Ctx) error {
	var payload navigateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	sess := sessionFrom(c)
	if _, err := sess.Navigate(payload.View, payload.ExhibitionID); err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, sess.Snapshot(), nil)
}

func (s *Server) handleListExhibitions(c *fiber.Ctx) error {
	filter := domain.ExhibitionFilter{
		Kind:     domain.Kind(c.Query("kind")),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}
	if filter.Kind != "" && filter.Kind != domain.KindMajor && filter.Kind != domain.KindMinor {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown kind %q", filter.Kind))
	}
	items, err := s.catalogue.ListExhibitions(c.UserContext(), filter)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, items, fiber.Map{"count": len(items)})
}

func (s *Server) handleGetExhibition(c *fiber.Ctx) error {
	ex, err := s.catalogue.GetExhibition(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, ex, nil)
}

func (s *Server) handleSubmitExhibition(c *fiber.Ctx) error {
	var payload domain.SubmitExhibitionInput
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	ex, err := sessionFrom(c).SubmitExhibition(c.UserContext(), payload)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, ex, nil)
}

func (s *Server) handleAddComment(c *fiber.Ctx) error {
	var payload domain.AddCommentInput
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	ex, err := sessionFrom(c).AddComment(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, ex, nil)
}

func (s *Server) handleToggleBookmark(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	on, err := sessionFrom(c).ToggleBookmark(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}
	ex, err := s.catalogue.GetExhibition(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"bookmarked": on, "exhibition": ex}, nil)
}

func (s *Server) handleInsight(c *fiber.Ctx) error {
	text, err := sessionFrom(c).GenerateInsight(c.UserContext(), s.assistant, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"text": text}, nil)
}

type enhanceRequest struct {
	Idea string `json:"idea"`
}

func (s *Server) handleEnhanceDraft(c *fiber.Ctx) error {
	var payload enhanceRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Idea) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "idea is required")
	}
	draft := s.assistant.EnhanceDraft(c.UserContext(), payload.Idea)
	s.logger.Debug("draft enhanced", zap.String("session", sessionFrom(c).ID()))
	return ok(c, fiber.StatusOK, draft, nil)
}

func (s *Server) handleCollections(c *fiber.Ctx) error {
	items, err := sessionFrom(c).Collections(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return ok(c, fiber.StatusOK, items, fiber.Map{"count": len(items)})
}

func (s *Server) handleNotifications(c *fiber.Ctx) error {
	items, unread := sessionFrom(c).Notifications()
	return ok(c, fiber.StatusOK, items, fiber.Map{"count": len(items), "unread": unread})
}

func (s *Server) handleMarkNotificationsRead(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	sess.MarkNotificationsRead()
	items, unread := sess.Notifications()
	return ok(c, fiber.StatusOK, items, fiber.Map{"count": len(items), "unread": unread})
}

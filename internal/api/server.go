package api

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/app"
	"github.com/WuFaChieh/Mostra-exhibition/internal/auth"
	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/insight"
	"github.com/WuFaChieh/Mostra-exhibition/internal/swipe"
)

// Assistant produces the assistive texts. Implementations never fail.
type Assistant interface {
	CuratorInsight(ctx context.Context, ex domain.Exhibition) string
	EnhanceDraft(ctx context.Context, rawIdea string) insight.Draft
}

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the Fiber application.
type Server struct {
	app       *fiber.App
	cfg       Config
	sessions  *app.Registry
	tokens    *auth.Issuer
	catalogue app.Store
	assistant Assistant
	logger    *zap.Logger
}

const sessionKey = "session"

// NewServer wires handlers and middleware.
func NewServer(cfg Config, sessions *app.Registry, tokens *auth.Issuer, catalogue app.Store, assistant Assistant, log *zap.Logger) *Server {
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	web := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          errorHandler,
	})
	web.Use(recover.New())
	web.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	web.Use(cors.New())

	srv := &Server{
		app:       web,
		cfg:       cfg,
		sessions:  sessions,
		tokens:    tokens,
		catalogue: catalogue,
		assistant: assistant,
		logger:    log,
	}
	srv.registerRoutes()
	return srv
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.logger.Info("mostra api listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Post("/sessions", s.handleOpenSession)

	authed := api.Group("", s.requireSession)
	authed.Get("/session", s.handleGetSession)
	authed.Post("/session/login", s.handleLogin)
	authed.Post("/session/logout", s.handleLogout)
	authed.Post("/session/navigate", s.handleNavigate)

	authed.Get("/exhibitions", s.handleListExhibitions)
	authed.Get("/exhibitions/:id", s.handleGetExhibition)
	authed.Post("/exhibitions", s.handleSubmitExhibition)
	authed.Post("/exhibitions/:id/comments", s.handleAddComment)
	authed.Post("/exhibitions/:id/bookmark", s.handleToggleBookmark)
	authed.Post("/exhibitions/:id/insight", s.handleInsight)
	authed.Post("/drafts/enhance", s.handleEnhanceDraft)

	authed.Get("/collections", s.handleCollections)
	authed.Get("/notifications", s.handleNotifications)
	authed.Post("/notifications/read", s.handleMarkNotificationsRead)

	authed.Get("/deck", s.handleDeck)
	authed.Put("/deck/filter", s.handleDeckFilter)
	authed.Post("/deck/gesture", s.handleDeckGesture)
	authed.Post("/deck/select", s.handleDeckSelect)
	authed.Post("/deck/restart", s.handleDeckRestart)
	authed.Post("/deck/persist", s.handleDeckPersist)
	authed.Post("/deck/grid", s.handleDeckGrid)
}

// requireSession resolves the bearer token to a live session.
func (s *Server) requireSession(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session token")
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	sess, err := s.sessions.Get(claims.SessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "session expired")
	}
	// login and logout reissue the token; an older one names the wrong user
	current := ""
	if u, ok := sess.User(); ok {
		current = u.ID
	}
	if claims.UserID != current {
		return fiber.NewError(fiber.StatusUnauthorized, "stale session token")
	}
	c.Locals(sessionKey, sess)
	return c.Next()
}

func sessionFrom(c *fiber.Ctx) *app.Session {
	sess, _ := c.Locals(sessionKey).(*app.Session)
	return sess
}

// ok writes the standard envelope. Every payload advertises the image fallback.
func ok(c *fiber.Ctx, status int, data any, meta fiber.Map) error {
	if meta == nil {
		meta = fiber.Map{}
	}
	meta["fallbackImageUrl"] = domain.FallbackImageURL
	return c.Status(status).JSON(fiber.Map{"data": data, "meta": meta})
}

// fail maps domain errors to responses. A missing login is reported with the
// session already moved to the login view.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		body := fiber.Map{"error": err.Error(), "redirect": string(app.ViewLogin)}
		if sess := sessionFrom(c); sess != nil {
			body["data"] = sess.Snapshot()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(body)
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRating):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, swipe.ErrDeckActive):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

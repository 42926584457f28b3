package web

import (
	"fmt"
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/russross/blackfriday/v2"

	"github.com/nleiva/codesensei/internal/app"
	"github.com/nleiva/codesensei/internal/web/templates"
	"github.com/nleiva/codesensei/pkg/config"
	"github.com/nleiva/codesensei/pkg/engine"
)

const (
	htmlContentType   = "text/html; charset=utf-8"
	sessionCookieName = "codesensei_session_id"
	sessionMaxAge     = 24 * time.Hour
)

// Server represents the web server with session management
type Server struct {
	app            *fiber.App
	sessionManager app.SessionManager
}

// WebRunner handles web server mode with consistent signature
type WebRunner struct {
	address string
}

// NewWebRunner creates a new web runner for the specified address
func NewWebRunner(address string) *WebRunner {
	return &WebRunner{address: address}
}

// Run starts the web server with the provided configuration
func (w *WebRunner) Run(cfg *config.Config) error {
	server := NewServer(cfg)
	return server.Run(w.address)
}

// NewServer creates a new web server instance with session management
func NewServer(cfg *config.Config) *Server {
	fiberApp := fiber.New(fiber.Config{
		DisableStartupMessage: false,
	})

	// Middleware
	fiberApp.Use(logger.New())
	fiberApp.Use(recover.New())

	// Initialize session manager
	sessionManager := app.NewInMemorySessionManager(cfg.Delay, cfg.LogDir, sessionMaxAge)

	server := &Server{
		app:            fiberApp,
		sessionManager: sessionManager,
	}

	server.setupRoutes()

	// Start cleanup routine for expired sessions
	go server.startSessionCleanup()

	return server
}

// startSessionCleanup runs a background cleanup routine for expired sessions
func (s *Server) startSessionCleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cleaned := s.sessionManager.CleanupExpiredSessions()
		if cleaned > 0 {
			log.Printf("Cleaned up %d expired sessions", cleaned)
		}
	}
}

// getOrCreateSession gets an existing session or creates a new one for the user
func (s *Server) getOrCreateSession(c *fiber.Ctx) (*app.ReviewSession, error) {
	sessionID := c.Cookies(sessionCookieName)

	if sessionID != "" {
		if session, err := s.sessionManager.GetSession(sessionID); err == nil {
			return session, nil
		}
	}

	// Create new session
	session, err := s.sessionManager.CreateSession("web")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Set session cookie
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return session, nil
}

func (s *Server) setupRoutes() {
	// Serve static files
	s.app.Static("/static", "./web/static")

	// Favicon handler
	s.app.Get("/favicon.ico", s.handleFavicon)

	// Main demo page
	s.app.Get("/", s.handleHome)

	// API endpoints
	s.app.Post("/action", s.handleAction)
	s.app.Post("/reset", s.handleReset)
	s.app.Get("/status", s.handleStatus)
}

func (s *Server) handleHome(c *fiber.Ctx) error {
	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.Page())
}

// renderComponent is a helper to render templ components
func (s *Server) renderComponent(c *fiber.Ctx, component templ.Component) error {
	return component.Render(c.Context(), c.Response().BodyWriter())
}

func (s *Server) handleFavicon(c *fiber.Ctx) error {
	// Return a simple 204 No Content for favicon requests
	return c.SendStatus(204)
}

func (s *Server) handleAction(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	action, err := engine.ParseAction(c.FormValue("action"))
	if err != nil {
		return c.Status(400).SendString("Unknown action")
	}

	code := c.FormValue("code")
	prompt := c.FormValue("prompt")

	// Run the action; empty inputs still produce a well-formed report,
	// just with a warning text instead of a full template.
	response := session.RunAction(c.Context(), action, code, prompt)

	c.Set("Content-Type", htmlContentType)
	if response.Warning {
		return s.renderComponent(c, templates.WarningComponent(response.Report.Text))
	}

	// Report text is markdown; render it for the fragment. Escaping of
	// interpolated user text is the template layer's concern, not the
	// engine's.
	bodyHTML := string(blackfriday.Run([]byte(response.Report.Text)))
	return s.renderComponent(c, templates.ReportComponent(
		response.Report,
		bodyHTML,
		response.ResponseTime.Milliseconds(),
	))
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	session.Reset()

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.WelcomeComponent())
}

// handleStatus returns session metrics as JSON
func (s *Server) handleStatus(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	summary := session.GetSessionSummary()

	var lastAction string
	if last := session.LastReport(); last != nil {
		lastAction = string(last.Action)
	}

	return c.JSON(fiber.Map{
		"session": fiber.Map{
			"id":                session.ID,
			"total_requests":    summary.TotalRequests,
			"duration_seconds":  summary.Duration.Seconds(),
			"avg_response_time": summary.AvgResponseTime,
			"last_action":       lastAction,
		},
		"actions": session.GetActionBreakdown(),
	})
}

// Run starts the web server
func (s *Server) Run(address string) error {
	log.Printf("Starting web server on http://localhost%s", address)
	return s.app.Listen(address)
}

package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dreyes/vitrina/internal/api"
	"github.com/dreyes/vitrina/internal/config"
	"github.com/dreyes/vitrina/internal/handlers"
	"github.com/dreyes/vitrina/internal/logging"
	"github.com/dreyes/vitrina/internal/rendering"
	"github.com/dreyes/vitrina/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config
	API *api.Client

	homeHandler     *handlers.HomeHandler
	fragmentHandler *handlers.FragmentHandler
}

// New creates a new Server instance wired against cfg.
func New(cfg *config.Config) *Server {
	logging.New(cfg.LogFormat) // Initialize the structured logger

	apiClient := api.New(cfg.APIBaseURL)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Configure and use session middleware, needed for flash messages.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	// Serve static files from the embedded web assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	// The universal renderer handles both gomponents and templ components.
	e.Renderer = rendering.NewUniversalRenderer()

	return &Server{
		E:               e,
		Cfg:             cfg,
		API:             apiClient,
		homeHandler:     handlers.NewHomeHandler(),
		fragmentHandler: handlers.NewFragmentHandler(apiClient),
	}
}

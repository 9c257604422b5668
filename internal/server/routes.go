package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)

	// Fragments loaded by the home page over htmx.
	s.E.GET("/fragments/greeting", s.fragmentHandler.GreetingGet)
	s.E.GET("/fragments/users", s.fragmentHandler.UsersGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

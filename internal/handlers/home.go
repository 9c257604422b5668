package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreyes/vitrina/internal/view"
	"github.com/dreyes/vitrina/web/src/templates/layouts"
	"github.com/dreyes/vitrina/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the page shell. The greeting and the user list arrive later
// through the fragment endpoints, so this render is a pure function of the
// initial (empty) state.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	pageContent := pages.Home()
	flashData := view.GetFlashData(c)

	finalComponent := layouts.Base("Inicio", flashData, pageContent)
	return c.Render(http.StatusOK, "", finalComponent)
}

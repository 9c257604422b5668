package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreyes/vitrina/internal/api"
	"github.com/dreyes/vitrina/web/src/templates/partials"
)

// FragmentHandler serves the htmx fragments the home page loads on mount.
// Each handler performs exactly one upstream read per request. Upstream
// failures are logged and rendered as the empty state; the fragment response
// is always 200 so the placeholder is replaced either way.
type FragmentHandler struct {
	api *api.Client
}

// NewFragmentHandler creates a new FragmentHandler backed by client.
func NewFragmentHandler(client *api.Client) *FragmentHandler {
	return &FragmentHandler{api: client}
}

// GreetingGet fetches the greeting and renders it. On failure the greeting
// stays empty; no error state is shown.
func (h *FragmentHandler) GreetingGet(c echo.Context) error {
	message, err := h.api.Greeting(c.Request().Context())
	if err != nil {
		slog.Warn("greeting fetch failed, rendering empty greeting", "error", err)
		message = ""
	}
	return c.Render(http.StatusOK, "", partials.Greeting(message))
}

// UsersGet fetches the user listing and renders it. On failure the list
// renders zero items; the loading placeholder is replaced regardless.
func (h *FragmentHandler) UsersGet(c echo.Context) error {
	users, err := h.api.Users(c.Request().Context())
	if err != nil {
		slog.Warn("user listing fetch failed, rendering empty list", "error", err)
		users = nil
	}
	return c.Render(http.StatusOK, "", partials.UserList(users))
}

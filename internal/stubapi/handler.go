package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreyes/vitrina/internal/api"
)

// Handler serves the fixed development API the front end was written
// against: a greeting, a user listing, and a health probe. It holds no
// persistent state; the data never changes while the process runs.
type Handler struct {
	greeting string
	users    []api.User
}

// NewHandler creates a Handler with the default development fixtures.
func NewHandler() *Handler {
	return &Handler{
		greeting: "¡Hola desde el backend!",
		users: []api.User{
			{ID: 1, Name: "Ana García", Email: "ana@example.com"},
			{ID: 2, Name: "Luis Pérez", Email: "luis@example.com"},
			{ID: 3, Name: "María López", Email: "maria@example.com"},
		},
	}
}

// Register attaches the API routes to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/hello", h.HelloGet)
	e.GET("/api/usuarios", h.UsersGet)
	e.GET("/api/health", h.HealthGet)
}

// HelloGet serves the greeting message.
func (h *Handler) HelloGet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": h.greeting})
}

// UsersGet serves the user listing.
func (h *Handler) UsersGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.users)
}

// HealthGet reports that the stub is up.
func (h *Handler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyes/vitrina/internal/handlers"
	"github.com/dreyes/vitrina/internal/rendering"
)

func newHomeApp() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.GET("/", handlers.NewHomeHandler().HomeGet)
	return e
}

func TestHomeGet_RendersShell(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHomeApp().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<h1>Lista de Usuarios</h1>")
	assert.Contains(t, body, "Cargando usuarios...", "the shell shows the loading placeholder until the users fragment settles")
	assert.Contains(t, body, "Inicio - Vitrina")
}

func TestHomeGet_LoadsEachFragmentOnce(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHomeApp().ServeHTTP(rec, req)

	body := rec.Body.String()

	// One mount, one fetch per endpoint.
	assert.Equal(t, 1, strings.Count(body, `hx-get="/fragments/greeting"`))
	assert.Equal(t, 1, strings.Count(body, `hx-get="/fragments/users"`))
	assert.Equal(t, 2, strings.Count(body, `hx-trigger="load"`))
}

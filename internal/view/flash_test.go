package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyes/vitrina/internal/view"
)

// withFlashContext runs fn inside a request that has the session middleware
// applied, which the flash helpers require.
func withFlashContext(t *testing.T, fn func(c echo.Context)) {
	t.Helper()

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.GET("/", func(c echo.Context) error {
		fn(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFlash_SetAndGet(t *testing.T) {
	withFlashContext(t, func(c echo.Context) {
		view.SetFlashSuccess(c, "saved")
		view.SetFlashError(c, "something failed")

		data := view.GetFlashData(c)
		assert.Equal(t, []string{"saved"}, data.Success)
		assert.Equal(t, []string{"something failed"}, data.Error)
	})
}

func TestFlash_GetClearsMessages(t *testing.T) {
	withFlashContext(t, func(c echo.Context) {
		view.SetFlashSuccess(c, "once")

		first := view.GetFlashData(c)
		assert.Equal(t, []string{"once"}, first.Success)

		second := view.GetFlashData(c)
		assert.Empty(t, second.Success)
		assert.Empty(t, second.Error)
	})
}

func TestFlash_EmptyWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	data := view.GetFlashData(c)
	assert.Empty(t, data.Success)
	assert.Empty(t, data.Error)
}

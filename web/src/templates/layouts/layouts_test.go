package layouts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/dreyes/vitrina/internal/view"
	"github.com/dreyes/vitrina/web/src/templates/layouts"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Inicio - Vitrina", layouts.CalculateTitle("Inicio"))
	assert.Equal(t, "Vitrina", layouts.CalculateTitle(""))
}

func TestBase_WrapsContent(t *testing.T) {
	content := html.P(gomponents.Text("page body"))

	var buf strings.Builder
	require.NoError(t, layouts.Base("Inicio", view.FlashData{}, content).Render(&buf))
	doc := buf.String()

	assert.True(t, strings.HasPrefix(doc, "<!doctype html>"))
	assert.Contains(t, doc, "<title>Inicio - Vitrina</title>")
	assert.Contains(t, doc, "htmx.org")
	assert.Contains(t, doc, "<main><p>page body</p></main>")
	assert.NotContains(t, doc, "flash-messages")
}

func TestBase_RendersFlashNotices(t *testing.T) {
	flash := view.FlashData{
		Success: []string{"guardado"},
		Error:   []string{"fallo"},
	}

	var buf strings.Builder
	require.NoError(t, layouts.Base("", flash, html.Div()).Render(&buf))
	doc := buf.String()

	assert.Contains(t, doc, "flash-success")
	assert.Contains(t, doc, "guardado")
	assert.Contains(t, doc, "flash-error")
	assert.Contains(t, doc, "fallo")
}

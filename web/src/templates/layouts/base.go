package layouts

import (
	"github.com/dreyes/vitrina/internal/view"
	"maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Base wraps page content in the full HTML document: head, htmx runtime,
// flash notices, and the main content area.
func Base(title string, flash view.FlashData, content gomponents.Node) gomponents.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("es"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(gomponents.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
			),
			h.Body(
				flashNotices(flash),
				h.Main(content),
			),
		),
	)
}

// flashNotices renders any flash messages retrieved for this request.
func flashNotices(flash view.FlashData) gomponents.Node {
	if len(flash.Success) == 0 && len(flash.Error) == 0 {
		return nil
	}
	return h.Div(
		h.Class("flash-messages"),
		gomponents.Map(flash.Success, func(msg string) gomponents.Node {
			return h.Div(h.Class("flash flash-success"), gomponents.Text(msg))
		}),
		gomponents.Map(flash.Error, func(msg string) gomponents.Node {
			return h.Div(h.Class("flash flash-error"), gomponents.Text(msg))
		}),
	)
}

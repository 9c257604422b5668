package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Home is the page shell rendered on GET /. The greeting slot and the users
// section each load themselves over htmx exactly once, right after the page
// appears; whichever response arrives first swaps in first. Until the users
// fragment settles, the section shows the loading placeholder.
func Home() cmp.Node {
	return g.Div(
		g.Class("container"),
		g.H1(cmp.Text("Lista de Usuarios")),
		g.Div(
			g.ID("greeting"),
			hx.Get("/fragments/greeting"),
			hx.Trigger("load"),
			hx.Swap("innerHTML"),
		),
		g.Section(
			g.ID("users"),
			hx.Get("/fragments/users"),
			hx.Trigger("load"),
			hx.Swap("innerHTML"),
			g.P(g.Class("loading"), cmp.Text("Cargando usuarios...")),
		),
	)
}

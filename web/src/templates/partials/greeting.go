package partials

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Greeting renders the greeting line shown below the page title. An empty
// message renders an empty line, which is what a failed greeting fetch
// resolves to.
func Greeting(message string) gomponents.Node {
	return P(Class("greeting"), gomponents.Text(message))
}

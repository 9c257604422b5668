package partials

import (
	"fmt"

	"github.com/dreyes/vitrina/internal/api"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// UserList renders the user listing as an unordered list, one
// "name - email" line per record, in the order received. Each item is keyed
// by the record id. A nil or empty slice renders a list with zero items.
func UserList(users []api.User) gomponents.Node {
	return Ul(
		ID("user-list"),
		gomponents.Map(users, func(u api.User) gomponents.Node {
			return Li(
				ID(fmt.Sprintf("user-%d", u.ID)),
				gomponents.Textf("%s - %s", u.Name, u.Email),
			)
		}),
	)
}

package client

// Route is a navigation target on the presentation layer.
type Route string

const (
	RouteBoard  Route = "/"
	RouteSignIn Route = "/sign-in"
	RouteSignUp Route = "/sign-up"
)

// Decision is a navigation verdict returned as data; the routing layer
// performs the redirect, the guard never does.
type Decision struct {
	Allowed    bool
	RedirectTo Route
}

// Decide gates routes on session state: unauthenticated visitors are
// sent to sign-in from protected views, signed-in users are sent to the
// board from the auth views.
func Decide(authenticated bool, route Route) Decision {
	switch route {
	case RouteSignIn, RouteSignUp:
		if authenticated {
			return Decision{RedirectTo: RouteBoard}
		}
		return Decision{Allowed: true}
	default:
		if !authenticated {
			return Decision{RedirectTo: RouteSignIn}
		}
		return Decision{Allowed: true}
	}
}

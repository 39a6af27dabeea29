package client

import "github.com/MKhiriev/go-vocab-trainer/internal/service"

// Route is the root screen chosen by the [Gate].
type Route int

const (
	RouteLogin Route = iota
	RouteMain
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteMain:
		return "main"
	}
	return "unknown"
}

// Gate picks the root screen from the session state. It only reads the
// session.
type Gate struct {
	session service.ClientSessionService
}

func NewGate(session service.ClientSessionService) *Gate {
	return &Gate{session: session}
}

// Route returns RouteMain when the session is signed in, RouteLogin
// otherwise.
func (g *Gate) Route() Route {
	if g.session.SignedIn() {
		return RouteMain
	}
	return RouteLogin
}

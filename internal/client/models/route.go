package models

// Route names a screen the client can navigate to.
type Route string

const (
	RouteNone     Route = ""
	RouteHome     Route = "Home"
	RouteLogin    Route = "Login"
	RouteRegister Route = "Register"
	RouteGallery  Route = "Gallery"
)

func (r Route) String() string {
	return string(r)
}

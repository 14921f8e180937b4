// Package screens holds the state of the login, registration and home
// screens: the input fields, the addressable text regions and the
// submission logic that ties them to services.AuthService.
//
// Regions are keyed by stable identifiers (errorEmail, commonError, ...)
// so a shell or a test can address them without knowing the layout. An
// empty region is absent.
//
// Typical Usage
//
//	ls := screens.NewLoginScreen(auth)
//	ls.Set(validation.FieldEmail, "test@example.com")
//	ls.Set(validation.FieldPassword, "Password123")
//	if route := ls.Submit(ctx); route != models.RouteNone {
//	    // navigate
//	}
//	msg, ok := ls.Region(screens.RegionCommonError)
package screens

package screens

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
)

type LoginScreen struct {
	*form
	auth services.AuthService
}

func NewLoginScreen(auth services.AuthService) *LoginScreen {
	return &LoginScreen{
		form: newForm(
			Input{Field: validation.FieldEmail, Placeholder: "Enter email"},
			Input{Field: validation.FieldPassword, Placeholder: "Enter password", Secret: true},
		),
		auth: auth,
	}
}

// Submit runs one login attempt and returns the route to navigate to,
// RouteNone when the screen stays.
func (s *LoginScreen) Submit(ctx context.Context) models.Route {
	v := s.begin()

	res := s.auth.Login(ctx, services.LoginForm{
		Email:    v[validation.FieldEmail],
		Password: v[validation.FieldPassword],
	})

	if res.FieldError != nil {
		s.show(RegionFor(res.FieldError.Field), res.FieldError.Message)
	}
	s.show(RegionCommonError, res.Common)
	return res.Route
}

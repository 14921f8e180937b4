package screens

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
)

type RegisterScreen struct {
	*form
	auth services.AuthService
}

func NewRegisterScreen(auth services.AuthService) *RegisterScreen {
	return &RegisterScreen{
		form: newForm(
			Input{Field: validation.FieldUsername, Placeholder: "Enter username"},
			Input{Field: validation.FieldEmail, Placeholder: "Enter email"},
			Input{Field: validation.FieldMobile, Placeholder: "Enter mobile number"},
			Input{Field: validation.FieldPassword, Placeholder: "Enter password", Secret: true},
		),
		auth: auth,
	}
}

// Submit runs one registration attempt. On success the outcome message is
// shown in the common region and every field is emptied.
func (s *RegisterScreen) Submit(ctx context.Context) models.Route {
	v := s.begin()

	res := s.auth.Register(ctx, services.RegisterForm{
		Username: v[validation.FieldUsername],
		Email:    v[validation.FieldEmail],
		Mobile:   v[validation.FieldMobile],
		Password: v[validation.FieldPassword],
	})

	if res.FieldError != nil {
		s.show(RegionFor(res.FieldError.Field), res.FieldError.Message)
	}
	s.show(RegionCommonError, res.Common)
	s.show(RegionCommonError, res.Success)
	if res.Reset {
		s.reset()
	}
	return res.Route
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login opens the Login screen, prompts for email and password and submits
// them. The screen is printed with whatever regions the attempt produced;
// on success the client moves to Home.
//
// Only input errors are returned; a rejected login is shown, not returned.
func (a *App) Login(ctx context.Context) error {
	a.navigate(ctx, models.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.Set(validation.FieldEmail, email)
	a.login.Set(validation.FieldPassword, string(password))

	route := a.login.Submit(ctx)
	renderForm(a.out, "Login", a.login)
	a.navigate(ctx, route)

	if a.route == models.RouteHome {
		renderHome(a.out, a.home)
	}
	return nil
}

// Register opens the Register screen and prompts for the four fields. On
// success the stored profile is replaced and the client moves back to Login.
func (a *App) Register(ctx context.Context) error {
	a.navigate(ctx, models.RouteRegister)

	prompts := []struct {
		field  validation.Field
		prompt string
	}{
		{validation.FieldUsername, "Enter username"},
		{validation.FieldEmail, "Enter email"},
		{validation.FieldMobile, "Enter mobile number"},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.prompt, a.out)
		if err != nil {
			return err
		}
		a.register.Set(p.field, v)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	a.register.Set(validation.FieldPassword, string(password))

	route := a.register.Submit(ctx)
	renderForm(a.out, "Register", a.register)
	a.navigate(ctx, route)
	return nil
}

// Home shows the Home screen; it needs a successful login first.
func (a *App) Home(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return errNotLoggedIn
	}
	a.navigate(ctx, models.RouteHome)
	renderHome(a.out, a.home)
	return nil
}

// Package services contains the application services of the gophauth client.
// This file defines the authentication workflows: login against the stored
// credential record and registration that replaces it.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
)

const (
	MsgNoRegisteredUser   = "No registered user found"
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoginFailed        = "Error: Something went wrong"
	MsgRegistered         = "Registration successful"
	MsgRegisterFailed     = "Something went wrong during registration"
)

var (
	ErrNoRegisteredUser   = errors.New("no registered user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreFailure       = errors.New("store failure")
)

type LoginForm struct {
	Email    string
	Password string
}

type RegisterForm struct {
	Username string
	Email    string
	Mobile   string
	Password string
}

// Result is the outcome of one submission. At most one of FieldError and
// Common is set. Route is RouteNone unless the caller should navigate.
type Result struct {
	FieldError *validation.FieldError
	Common     string
	Success    string
	Route      models.Route
	// Reset asks the caller to clear every input field.
	Reset bool
	// Err is the cause behind Common, matched with errors.Is.
	Err error
}

// AuthService defines the login and registration workflows.
//
// Contract:
//   - Login: validate, read the record once, compare, route to Home on match.
//   - Register: validate, write the record once, route to Login on success.
//
// Neither method returns an error: every failure is mapped into the Result.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) Result
	Register(ctx context.Context, form RegisterForm) Result
}

type authService struct {
	creds credentials.Repository
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given credential store.
func NewAuthService(creds credentials.Repository, log logging.Logger) AuthService {
	return &authService{creds: creds, log: log}
}

func (s *authService) Login(ctx context.Context, form LoginForm) Result {
	log := s.log.With("op", "login", "attempt", uuid.NewString())

	if fe := validation.LoginRules.Validate(map[validation.Field]string{
		validation.FieldEmail:    form.Email,
		validation.FieldPassword: form.Password,
	}); fe != nil {
		log.Debug(ctx, "validation failed", "field", fe.Field)
		return Result{FieldError: fe}
	}

	stored, err := s.creds.Get(ctx)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		log.Info(ctx, "no registered user")
		return Result{Common: MsgNoRegisteredUser, Err: ErrNoRegisteredUser}
	case err != nil:
		log.Error(ctx, "credential read failed", "error", err)
		return Result{Common: MsgLoginFailed, Err: ErrStoreFailure}
	}

	if !stored.Matches(form.Email, form.Password) {
		log.Info(ctx, "credentials mismatch")
		return Result{Common: MsgInvalidCredentials, Err: ErrInvalidCredentials}
	}

	log.Info(ctx, "login succeeded")
	return Result{Route: models.RouteHome}
}

func (s *authService) Register(ctx context.Context, form RegisterForm) Result {
	log := s.log.With("op", "register", "attempt", uuid.NewString())

	if fe := validation.RegisterRules.Validate(map[validation.Field]string{
		validation.FieldUsername: form.Username,
		validation.FieldEmail:    form.Email,
		validation.FieldMobile:   form.Mobile,
		validation.FieldPassword: form.Password,
	}); fe != nil {
		log.Debug(ctx, "validation failed", "field", fe.Field)
		return Result{FieldError: fe}
	}

	rec := &models.Credential{
		Username: form.Username,
		Email:    form.Email,
		Mobile:   form.Mobile,
		Password: form.Password,
	}
	if err := s.creds.Put(ctx, rec); err != nil {
		log.Error(ctx, "credential write failed", "error", err)
		return Result{Common: MsgRegisterFailed, Err: ErrStoreFailure}
	}

	log.Info(ctx, "user registered")
	return Result{Success: MsgRegistered, Route: models.RouteLogin, Reset: true}
}

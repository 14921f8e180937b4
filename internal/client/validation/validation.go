// Package validation checks raw form fields before any store access.
//
// Rules are kept in an explicit ordered list and evaluated first to last;
// the first failing rule is the only error reported for a submission.
package validation

import (
	"errors"
	"regexp"
)

// Field names a form input, or FieldCommon for screen-level messages.
type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldMobile   Field = "mobile"
	FieldPassword Field = "password"
	FieldCommon   Field = "common"
)

const (
	MsgUsernameRequired      = "Username is required"
	MsgInvalidEmail          = "Invalid email format"
	MsgInvalidMobile         = "Invalid mobile number, it should be 10 digits"
	MsgInvalidPassword       = "Invalid password"
	MsgInvalidPasswordDetail = "Password must be at least 6 characters long, contain one uppercase letter, one lowercase letter, and one number"
)

var ErrInvalidField = errors.New("invalid field")

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	passRe   = regexp.MustCompile(`^[A-Za-z0-9]{6,}$`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
)

func IsPresent(s string) bool { return s != "" }

func IsEmail(s string) bool { return emailRe.MatchString(s) }

func IsMobile(s string) bool { return mobileRe.MatchString(s) }

// IsPassword requires 6+ ASCII letters/digits with at least one lowercase
// letter, one uppercase letter and one digit.
func IsPassword(s string) bool {
	return passRe.MatchString(s) &&
		lowerRe.MatchString(s) &&
		upperRe.MatchString(s) &&
		digitRe.MatchString(s)
}

// FieldError is the single error produced by a failed validation pass.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// Rule checks one field.
type Rule struct {
	Field   Field
	Check   func(string) bool
	Message string
}

// Rules is an ordered rule list.
type Rules []Rule

// Validate runs rules in order against values and returns the first failure,
// or nil when every rule passes. Missing values are treated as empty strings.
func (rs Rules) Validate(values map[Field]string) *FieldError {
	for _, r := range rs {
		if !r.Check(values[r.Field]) {
			return &FieldError{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}

// LoginRules checks email then password.
var LoginRules = Rules{
	{Field: FieldEmail, Check: IsEmail, Message: MsgInvalidEmail},
	{Field: FieldPassword, Check: IsPassword, Message: MsgInvalidPassword},
}

// RegisterRules checks username, email, mobile, then password.
var RegisterRules = Rules{
	{Field: FieldUsername, Check: IsPresent, Message: MsgUsernameRequired},
	{Field: FieldEmail, Check: IsEmail, Message: MsgInvalidEmail},
	{Field: FieldMobile, Check: IsMobile, Message: MsgInvalidMobile},
	{Field: FieldPassword, Check: IsPassword, Message: MsgInvalidPasswordDetail},
}

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"first.last@sub.domain.org",
		"a_b-c@x-y.io",
		"user@host.info",
	}
	invalid := []string{
		"",
		"invalidemail.com",
		"user@",
		"user@example",
		"user@example.c",
		"user@example.museum",
		"user@exa mple.com",
		"us+er@example.com",
		"user@example.c0m",
		"@example.com",
	}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}

func TestIsPassword(t *testing.T) {
	valid := []string{"Password123", "aB3def", "Test1234", "ZZZzz9"}
	invalid := []string{
		"",
		"Pas",
		"aB3de",        // too short
		"password123",  // no upper
		"PASSWORD123",  // no lower
		"Passwordabc",  // no digit
		"Password 123", // space
		"Passw0rd!",    // symbol
		"Pässword123",  // non-ASCII
	}
	for _, s := range valid {
		assert.True(t, IsPassword(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsPassword(s), s)
	}
}

func TestIsMobile(t *testing.T) {
	assert.True(t, IsMobile("9876543210"))
	assert.False(t, IsMobile("987654321"), "9 digits")
	assert.False(t, IsMobile("98765432101"), "11 digits")
	assert.False(t, IsMobile("98765-4321"))
	assert.False(t, IsMobile(""))
}

func TestLoginRules_ShortCircuitsOnEmail(t *testing.T) {
	fe := LoginRules.Validate(map[Field]string{FieldEmail: "", FieldPassword: ""})
	require.NotNil(t, fe)
	assert.Equal(t, FieldEmail, fe.Field)
	assert.Equal(t, MsgInvalidEmail, fe.Message)

	fe = LoginRules.Validate(map[Field]string{FieldEmail: "test@gmail.com", FieldPassword: "Pas"})
	require.NotNil(t, fe)
	assert.Equal(t, FieldPassword, fe.Field)
	assert.Equal(t, MsgInvalidPassword, fe.Message)

	assert.Nil(t, LoginRules.Validate(map[Field]string{FieldEmail: "test@example.com", FieldPassword: "Password123"}))
}

func TestRegisterRules_Order(t *testing.T) {
	tests := []struct {
		name      string
		values    map[Field]string
		wantField Field
		wantMsg   string
	}{
		{
			name:      "empty username wins over everything",
			values:    map[Field]string{FieldEmail: "bad", FieldMobile: "1", FieldPassword: "x"},
			wantField: FieldUsername,
			wantMsg:   MsgUsernameRequired,
		},
		{
			name:      "email before mobile",
			values:    map[Field]string{FieldUsername: "test", FieldEmail: "bad", FieldMobile: "1"},
			wantField: FieldEmail,
			wantMsg:   MsgInvalidEmail,
		},
		{
			name:      "mobile 9 digits",
			values:    map[Field]string{FieldUsername: "test", FieldEmail: "test@gmail.com", FieldMobile: "987654321"},
			wantField: FieldMobile,
			wantMsg:   MsgInvalidMobile,
		},
		{
			name:      "mobile 11 digits",
			values:    map[Field]string{FieldUsername: "test", FieldEmail: "test@gmail.com", FieldMobile: "98765432101"},
			wantField: FieldMobile,
			wantMsg:   MsgInvalidMobile,
		},
		{
			name: "password last, descriptive message",
			values: map[Field]string{FieldUsername: "test", FieldEmail: "test@gmail.com",
				FieldMobile: "9876543210", FieldPassword: "password"},
			wantField: FieldPassword,
			wantMsg:   MsgInvalidPasswordDetail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := RegisterRules.Validate(tt.values)
			require.NotNil(t, fe)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}

	ok := RegisterRules.Validate(map[Field]string{FieldUsername: "test", FieldEmail: "test@gmail.com",
		FieldMobile: "9876543210", FieldPassword: "Password123"})
	assert.Nil(t, ok)
}

func TestFieldError_IsInvalidField(t *testing.T) {
	var err error = &FieldError{Field: FieldMobile, Message: MsgInvalidMobile}
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.True(t, strings.HasPrefix(err.Error(), "mobile: "))
}

func TestRules_CheckedInDeclaredOrder(t *testing.T) {
	var seen []Field
	track := func(f Field) func(string) bool {
		return func(string) bool { seen = append(seen, f); return true }
	}
	rs := Rules{
		{Field: FieldUsername, Check: track(FieldUsername)},
		{Field: FieldEmail, Check: track(FieldEmail)},
		{Field: FieldMobile, Check: track(FieldMobile)},
	}
	require.Nil(t, rs.Validate(nil))
	assert.Equal(t, []Field{FieldUsername, FieldEmail, FieldMobile}, seen)
}

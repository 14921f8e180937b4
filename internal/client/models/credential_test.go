package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_JSONShape(t *testing.T) {
	full := Credential{Username: "test", Email: "test@gmail.com", Mobile: "9876543210", Password: "Password123"}
	b, err := json.Marshal(full)
	require.NoError(t, err)
	assert.Equal(t,
		`{"username":"test","email":"test@gmail.com","mobile":"9876543210","password":"Password123"}`,
		string(b))

	short := Credential{Email: "test@example.com", Password: "Password123"}
	b, err = json.Marshal(short)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"test@example.com","password":"Password123"}`, string(b))
}

func TestCredential_Matches(t *testing.T) {
	c := &Credential{Email: "test@example.com", Password: "Password123"}

	assert.True(t, c.Matches("test@example.com", "Password123"))
	assert.False(t, c.Matches("test@example.com", "password123"), "password is case-sensitive")
	assert.False(t, c.Matches("Test@example.com", "Password123"), "email is compared exactly")
	assert.False(t, c.Matches("user@example.com", "Password123"))
}

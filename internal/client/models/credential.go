// Package models defines client-side data models used by the gophauth CLI.
package models

// Credential is the single persisted user profile. It is stored verbatim as
// JSON with the field order username, email, mobile, password; optional
// fields are omitted when empty.
type Credential struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password"`
}

// Matches reports whether email and password are exactly (case-sensitively)
// the stored ones.
func (c *Credential) Matches(email, password string) bool {
	return c.Email == email && c.Password == password
}

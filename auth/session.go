// Package auth manages the two independent session markers: the customer
// login (a stored user id) and the admin flag. The admin flag is granted by
// a fixed credential pair, not by a user account.
package auth

import (
	"crypto/subtle"
	"os"

	"github.com/gin-contrib/sessions"
)

const (
	keyUserID  = "user_id"
	keyIsAdmin = "is_admin"
)

// LoginCustomer records userID as the session's authenticated customer.
func LoginCustomer(s sessions.Session, userID uint) error {
	s.Set(keyUserID, userID)
	return s.Save()
}

// LogoutCustomer drops the customer marker. The admin marker, if any, is
// left untouched.
func LogoutCustomer(s sessions.Session) error {
	s.Delete(keyUserID)
	return s.Save()
}

// CustomerID returns the logged-in customer's user id, if any.
func CustomerID(s sessions.Session) (uint, bool) {
	id, ok := s.Get(keyUserID).(uint)
	return id, ok
}

// GrantAdmin sets the admin marker on the session.
func GrantAdmin(s sessions.Session) error {
	s.Set(keyIsAdmin, true)
	return s.Save()
}

// RevokeAdmin drops the admin marker.
func RevokeAdmin(s sessions.Session) error {
	s.Delete(keyIsAdmin)
	return s.Save()
}

// IsAdmin reports whether the session carries the admin marker.
func IsAdmin(s sessions.Session) bool {
	v, ok := s.Get(keyIsAdmin).(bool)
	return ok && v
}

// AdminCredentialsMatch checks username/password against the configured
// admin pair (ADMIN_USERNAME / ADMIN_PASSWORD, with the demo defaults).
func AdminCredentialsMatch(username, password string) bool {
	wantUser := envOr("ADMIN_USERNAME", "admin")
	wantPass := envOr("ADMIN_PASSWORD", "67sigma")
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOK && passOK
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

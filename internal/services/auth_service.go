package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth checks the token guarding catalog writes against a bcrypt hash.
type AdminAuth struct {
	hash []byte
}

func NewAdminAuth(hash string) *AdminAuth {
	return &AdminAuth{hash: []byte(hash)}
}

// Enabled is false when no hash is configured; every token is then refused.
func (a *AdminAuth) Enabled() bool { return len(a.hash) > 0 }

func (a *AdminAuth) Check(token string) bool {
	if !a.Enabled() || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(token)) == nil
}

package auth

import "github.com/heartmarshall/wordforge-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  domain.User
}

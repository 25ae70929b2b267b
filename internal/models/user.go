package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the authentication collaborator puts in its tokens. The
// storefront only reads the subject and a display name; account lifecycle
// lives entirely with the identity provider.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

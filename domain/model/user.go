package model

import "github.com/golang-jwt/jwt"

// UserClaims is the JWT payload issued by the identity provider. The core
// trusts the subject as the caller identity and does not re-verify it.
type UserClaims struct {
	UserName string `json:"user_name,omitempty"`
	jwt.StandardClaims
}

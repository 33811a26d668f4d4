package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// AdminClaims is the JWT payload issued to the marketplace administrator.
type AdminClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *AdminClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

package dto

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin grants access to analyses across all users.
const RoleAdmin = "admin"

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	// Role is empty for regular users and RoleAdmin for operators.
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

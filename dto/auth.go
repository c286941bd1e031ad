package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	AccountID int    `json:"accountId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SignupRequest represents citizen registration data
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents citizen login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminSignupRequest represents staff registration data. Email is
// optional but must belong to the institutional domain when present.
type AdminSignupRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Password   string `json:"password" binding:"required,min=6"`
}

// AdminLoginRequest represents staff login credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

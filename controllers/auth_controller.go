package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"potholetrack/dto"
	"potholetrack/services"
)

// AuthController exposes signup and login for citizens and staff
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup handles POST /api/signup
func (ctl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := ctl.auth.SignupUser(req)
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user":    user,
	})
}

// Login handles POST /api/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := ctl.auth.LoginUser(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		serviceError(c, err, "User not found")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// AdminSignup handles POST /api/admin/signup
func (ctl *AuthController) AdminSignup(c *gin.Context) {
	var req dto.AdminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := ctl.auth.SignupAdmin(req)
	if err != nil {
		serviceError(c, err, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin account created successfully",
		"admin":   admin,
	})
}

// AdminLogin handles POST /api/admin/login
func (ctl *AuthController) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, token, err := ctl.auth.LoginAdmin(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		serviceError(c, err, "Admin not found")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"admin":   admin,
		"token":   token,
	})
}

// ListUsers handles GET /api/users. Password hashes are excluded by the
// model's JSON encoding.
func (ctl *AuthController) ListUsers(c *gin.Context) {
	users, err := ctl.auth.ListUsers()
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// setTokenCookie mirrors the token into an HttpOnly cookie for browser
// clients; API clients can use the token from the response body.
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("access_token", token, 86400, "/", "", false, true)
}

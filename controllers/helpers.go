package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"potholetrack/repositories"
	"potholetrack/services"
)

// fail writes the error envelope. The message is authoritative for
// display; clients must not infer the reason from the status code alone.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// serviceError maps service and repository errors onto the HTTP error
// taxonomy: validation 400, conflicts 400, bad credentials 401, missing
// records 404, storage failures 500.
func serviceError(c *gin.Context, err error, notFoundMessage string) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		fail(c, http.StatusBadRequest, validation.Error())
	case errors.Is(err, repositories.ErrEmailTaken):
		fail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, repositories.ErrUsernameTaken):
		fail(c, http.StatusBadRequest, "Username already taken")
	case errors.Is(err, repositories.ErrNotFound):
		fail(c, http.StatusNotFound, notFoundMessage)
	default:
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response body carries a "message" field; successful responses merge
// the payload fields next to it, e.g. {"message": ..., "recipe": {...}}.

func body(message string, payload gin.H) gin.H {
	out := gin.H{"message": message}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// Success sends a 200 response
func Success(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, body(message, payload))
}

// Created sends a 201 response
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, body(message, payload))
}

// Error sends an error response with the given status code
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError sends a 500 error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the {"error": ...} failure envelope. Resources are returned
// unwrapped by the handlers, so success paths never use it.
type Response struct {
	Status int    `json:"-"`     // HTTP status code
	Error  string `json:"error"` // Error message
}

// NotModified must not carry a body per RFC 9110
func NotModified(c *gin.Context) {
	c.Status(http.StatusNotModified)
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Status: http.StatusForbidden,
		Error:  message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, &Response{
		Status: http.StatusTooManyRequests,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope every non-2xx response uses. Successful
// responses return their payload directly, without wrapping, to match
// what the admin SPA expects.
type ErrorBody struct {
	Message string `json:"message"`
}

// ── Success responses ──

// OK writes the payload as-is with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload as-is with HTTP 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ── Error responses ──

// Error writes a {message} body with the given status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 with a generic message; the raw error is expected
// to have been logged server-side already.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Đã xảy ra lỗi hệ thống.")
}

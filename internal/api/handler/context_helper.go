package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duyvawss25/Do-An-Co-So/internal/api/middleware"
)

// currentUserID reads the authenticated user ID set by JWTAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

// currentTokenJTI reads the access token ID set by JWTAuth.
func currentTokenJTI(c *gin.Context) string {
	return c.GetString(middleware.CtxTokenJTI)
}

// currentTokenExp reads the access token expiry set by JWTAuth.
func currentTokenExp(c *gin.Context) time.Time {
	if v, ok := c.Get(middleware.CtxTokenExp); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

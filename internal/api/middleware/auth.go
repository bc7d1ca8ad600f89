package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duyvawss25/Do-An-Co-So/pkg/jwt"
	"github.com/duyvawss25/Do-An-Co-So/pkg/redis"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// JWTAuth validates the Bearer access token and loads the principal
// into the request context. rdb may be nil; the blacklist check is
// then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Yêu cầu đăng nhập")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Token không hợp lệ")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, "Token không hợp lệ")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "Token đã bị thu hồi")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxTokenJTI, claims.ID)
		c.Set(CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

// RoleAuth allows only the listed roles past.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Không có quyền truy cập")
		c.Abort()
	}
}

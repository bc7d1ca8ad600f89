package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// AuthHandler serves /auth endpoints.
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.Created(c, resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, resp)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, resp)
}

// Logout handles POST /auth/logout. Requires JWTAuth.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), currentTokenJTI(c), currentTokenExp(c)); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Đăng xuất thành công"})
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInvalidRefresh):
		response.Unauthorized(c, err.Error())
	default:
		h.logger.Error("auth error", zap.Error(err))
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// UserHandler serves /users endpoints.
type UserHandler struct {
	svc    service.UserService
	logger *zap.Logger
}

// NewUserHandler builds the user handler.
func NewUserHandler(svc service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// GetProfile handles GET /users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.svc.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateProfile handles PUT /users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa người dùng thành công"})
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDeleteSelf):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("user error", zap.Error(err))
		response.InternalError(c)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// AuthHandler 登录处理器
type AuthHandler struct {
	auth   *service.Authenticator
	logger *logger.Logger
}

// NewAuthHandler 创建登录处理器实例
func NewAuthHandler(auth *service.Authenticator, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 管理员登录
// @Summary 管理员登录
// @Description 校验邮箱和密码，返回会话令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "登录信息"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	session, err := h.auth.Issue(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, session)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SettingsHandler 站点设置处理器
type SettingsHandler struct {
	settings *service.SettingsService
	logger   *logger.Logger
}

// NewSettingsHandler 创建设置处理器实例
func NewSettingsHandler(settings *service.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// Get 获取站点设置，未设置时返回空对象
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, settings)
}

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SettingsAdminHandler 站点设置管理
type SettingsAdminHandler struct {
	settings *service.SettingsService
	logger   *logger.Logger
}

// NewSettingsAdminHandler 创建设置管理处理器实例
func NewSettingsAdminHandler(settings *service.SettingsService, logger *logger.Logger) *SettingsAdminHandler {
	return &SettingsAdminHandler{settings: settings, logger: logger}
}

// Update 合并更新站点设置
func (h *SettingsAdminHandler) Update(c *gin.Context) {
	var patch service.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), patch)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OKWithMessage(c, constants.SuccessSettings, settings)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SystemHandler 健康检查和站点地图
type SystemHandler struct {
	sitemap     *service.SitemapService
	serviceName string
	logger      *logger.Logger
}

// NewSystemHandler 创建系统处理器实例
func NewSystemHandler(sitemap *service.SitemapService, serviceName string, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{sitemap: sitemap, serviceName: serviceName, logger: logger}
}

// Health 健康检查
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": h.serviceName})
}

// Sitemap 返回 sitemap.xml
func (h *SystemHandler) Sitemap(c *gin.Context) {
	data, err := h.sitemap.Generate(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

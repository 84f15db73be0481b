package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SectionAdminHandler 页面内容管理
type SectionAdminHandler struct {
	*ResourceWriteHandler[model.PageSection, *model.PageSection, SectionPatch]
	sections *service.SectionService
}

// NewSectionAdminHandler 创建页面内容管理处理器实例
func NewSectionAdminHandler(sections *service.SectionService, logger *logger.Logger) *SectionAdminHandler {
	return &SectionAdminHandler{
		ResourceWriteHandler: NewResourceWriteHandler[model.PageSection, *model.PageSection, SectionPatch](sections.ResourceService, logger),
		sections:             sections,
	}
}

// Upsert 按 (page, key) 写入，已存在时只更新内容
func (h *SectionAdminHandler) Upsert(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	section, err := h.sections.Upsert(c.Request.Context(), req.Page, req.Key, req.Content)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.audit(c, "写入页面内容", section.ID)
	response.OKWithMessage(c, constants.SuccessSection, section)
}

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/middleware"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// Patch 部分更新请求，只修改非空字段
type Patch[P any] interface {
	Apply(record P)
}

// ResourceWriteHandler 按ID更新和删除内容资源。U 为更新请求
type ResourceWriteHandler[T any, P interface {
	*T
	model.Entity
}, U Patch[P]] struct {
	svc    *service.ResourceService[T, P]
	logger *logger.Logger
}

// NewResourceWriteHandler 创建资源更新/删除处理器
func NewResourceWriteHandler[T any, P interface {
	*T
	model.Entity
}, U Patch[P]](svc *service.ResourceService[T, P], logger *logger.Logger) *ResourceWriteHandler[T, P, U] {
	return &ResourceWriteHandler[T, P, U]{svc: svc, logger: logger}
}

// Update 部分更新，请求中未出现的字段保持不变
func (h *ResourceWriteHandler[T, P, U]) Update(c *gin.Context) {
	var patch U
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Debug("参数绑定失败", "path", c.FullPath(), "error", err)
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	record, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch.Apply)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.audit(c, "更新记录", record.Meta().ID)
	response.OKWithMessage(c, constants.SuccessUpdate, record)
}

// Delete 删除
func (h *ResourceWriteHandler[T, P, U]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.audit(c, "删除记录", c.Param("id"))
	response.Message(c, constants.SuccessDelete)
}

// audit 记录管理员的写操作
func (h *ResourceWriteHandler[T, P, U]) audit(c *gin.Context, action, id string) {
	operator := ""
	if user, ok := middleware.CurrentUser(c); ok {
		operator = user.Email
	}
	h.logger.Info(action, "table", h.svc.Schema().Table, "id", id, "operator", operator)
}

// ResourceAdminHandler 内容资源的管理接口。C 为创建请求，U 为更新请求
type ResourceAdminHandler[T any, P interface {
	*T
	model.Entity
}, C any, U Patch[P]] struct {
	*ResourceWriteHandler[T, P, U]
	build func(C) P
}

// NewResourceAdminHandler 创建资源管理处理器，build 将创建请求转换为记录
func NewResourceAdminHandler[T any, P interface {
	*T
	model.Entity
}, C any, U Patch[P]](svc *service.ResourceService[T, P], build func(C) P, logger *logger.Logger) *ResourceAdminHandler[T, P, C, U] {
	return &ResourceAdminHandler[T, P, C, U]{
		ResourceWriteHandler: NewResourceWriteHandler[T, P, U](svc, logger),
		build:                build,
	}
}

// Create 创建
func (h *ResourceAdminHandler[T, P, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("参数绑定失败", "path", c.FullPath(), "error", err)
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	record := h.build(req)
	if err := h.svc.Create(c.Request.Context(), record); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.audit(c, "创建记录", record.Meta().ID)
	response.OK(c, record)
}

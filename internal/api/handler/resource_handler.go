package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// ResourceHandler 内容资源的公开读取接口
type ResourceHandler[T any, P interface {
	*T
	model.Entity
}] struct {
	svc    *service.ResourceService[T, P]
	logger *logger.Logger
}

// NewResourceHandler 创建资源读取处理器
func NewResourceHandler[T any, P interface {
	*T
	model.Entity
}](svc *service.ResourceService[T, P], logger *logger.Logger) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{svc: svc, logger: logger}
}

// List 分页列表，支持 skip、limit、sort、order 以及各资源自己的过滤参数
func (h *ResourceHandler[T, P]) List(c *gin.Context) {
	q, ok := ParseListQuery(c, h.svc.Schema())
	if !ok {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	page, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, page)
}

// Get 根据ID获取
func (h *ResourceHandler[T, P]) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, record)
}

// ParseListQuery 解析分页和过滤参数，数字格式错误或排序方向无效时返回 false
func ParseListQuery(c *gin.Context, schema repository.Schema) (repository.ListQuery, bool) {
	var q repository.ListQuery

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return q, false
		}
		q.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, false
		}
		q.Limit = limit
	}

	q.Sort = c.Query("sort")
	switch strings.ToLower(c.DefaultQuery("order", "desc")) {
	case "asc":
		q.Ascending = true
	case "desc":
	default:
		return q, false
	}

	for name := range schema.Filters {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[name] = v
		}
	}
	return q, true
}

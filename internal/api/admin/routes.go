package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/handler"
	"github.com/nihatdadaloglu/oda/internal/model"
)

// Handlers 管理接口使用的处理器
type Handlers struct {
	Announcements *ResourceAdminHandler[model.Announcement, *model.Announcement, AnnouncementRequest, AnnouncementPatch]
	Documents     *ResourceAdminHandler[model.Document, *model.Document, DocumentRequest, DocumentPatch]
	Visits        *ResourceAdminHandler[model.Visit, *model.Visit, VisitRequest, VisitPatch]
	Payments      *ResourceAdminHandler[model.PaymentItem, *model.PaymentItem, PaymentRequest, PaymentPatch]
	Sections      *SectionAdminHandler
	Settings      *SettingsAdminHandler
	Contacts      *handler.ResourceHandler[model.ContactMessage, *model.ContactMessage]
	Memberships   *handler.ResourceHandler[model.MembershipApplication, *model.MembershipApplication]
}

// RegisterAdminRoutes 注册需要管理员会话的路由，router 已挂载认证中间件
func RegisterAdminRoutes(router *gin.RouterGroup, h Handlers) {
	router.POST("/announcements", h.Announcements.Create)
	router.PUT("/announcements/:id", h.Announcements.Update)
	router.DELETE("/announcements/:id", h.Announcements.Delete)

	router.POST("/documents", h.Documents.Create)
	router.PUT("/documents/:id", h.Documents.Update)
	router.DELETE("/documents/:id", h.Documents.Delete)

	router.POST("/visits", h.Visits.Create)
	router.PUT("/visits/:id", h.Visits.Update)
	router.DELETE("/visits/:id", h.Visits.Delete)

	router.POST("/payments", h.Payments.Create)
	router.PUT("/payments/:id", h.Payments.Update)
	router.DELETE("/payments/:id", h.Payments.Delete)

	router.POST("/page-sections", h.Sections.Upsert)
	router.PUT("/page-sections/:id", h.Sections.Update)
	router.DELETE("/page-sections/:id", h.Sections.Delete)

	router.PUT("/settings", h.Settings.Update)

	router.GET("/contacts", h.Contacts.List)
	router.GET("/membership", h.Memberships.List)
}

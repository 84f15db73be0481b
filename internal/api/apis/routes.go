package apis

import (
	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/handler"
	"github.com/nihatdadaloglu/oda/internal/model"
)

// PublicHandlers 公开接口使用的处理器
type PublicHandlers struct {
	Auth          *handler.AuthHandler
	Upload        *handler.UploadHandler
	Announcements *handler.ResourceHandler[model.Announcement, *model.Announcement]
	Documents     *handler.ResourceHandler[model.Document, *model.Document]
	Visits        *handler.ResourceHandler[model.Visit, *model.Visit]
	Payments      *handler.ResourceHandler[model.PaymentItem, *model.PaymentItem]
	Sections      *handler.ResourceHandler[model.PageSection, *model.PageSection]
	Settings      *handler.SettingsHandler
	Intake        *handler.IntakeHandler
	System        *handler.SystemHandler
}

// RegisterPublicRoutes 注册不需要认证的路由
func RegisterPublicRoutes(router *gin.RouterGroup, h PublicHandlers) {
	router.POST("/auth/login", h.Auth.Login)
	router.POST("/upload", h.Upload.Upload)

	router.GET("/announcements", h.Announcements.List)
	router.GET("/announcements/:id", h.Announcements.Get)
	router.GET("/documents", h.Documents.List)
	router.GET("/documents/:id", h.Documents.Get)
	router.GET("/visits", h.Visits.List)
	router.GET("/visits/:id", h.Visits.Get)
	router.GET("/payments", h.Payments.List)
	router.GET("/payments/:id", h.Payments.Get)
	router.GET("/page-sections", h.Sections.List)
	router.GET("/page-sections/:id", h.Sections.Get)
	router.GET("/settings", h.Settings.Get)

	// 公开表单
	router.POST("/contact", h.Intake.Contact)
	router.POST("/membership", h.Intake.Membership)
	router.GET("/membership/status", h.Intake.MembershipStatus)

	router.GET("/sitemap.xml", h.System.Sitemap)
	router.GET("/health", h.System.Health)
}

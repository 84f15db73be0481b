package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/api/admin"
	"github.com/nihatdadaloglu/oda/internal/api/apis"
	"github.com/nihatdadaloglu/oda/internal/api/handler"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/middleware"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
	"github.com/nihatdadaloglu/oda/pkg/storage"
)

// SetupRouter 设置API路由。redisClient 为 nil 时不使用缓存
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client, notifier service.Notifier) (*gin.Engine, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	fileStore, err := storage.NewLocal(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	// 初始化存储库
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	sectionRepo := repository.NewPageSectionRepository(db)
	announcementStore := repository.NewStore[model.Announcement](db, repository.AnnouncementSchema)
	documentStore := repository.NewStore[model.Document](db, repository.DocumentSchema)
	visitStore := repository.NewStore[model.Visit](db, repository.VisitSchema)
	paymentStore := repository.NewStore[model.PaymentItem](db, repository.PaymentSchema)
	contactStore := repository.NewStore[model.ContactMessage](db, repository.ContactSchema)
	membershipStore := repository.NewStore[model.MembershipApplication](db, repository.MembershipSchema)

	// 初始化服务
	authenticator := service.NewAuthenticator(userRepo, cfg.Auth)
	files := service.NewFileIngestor(fileStore, cfg.Upload.MaxSize, logger)
	announcementService := service.NewResourceService(announcementStore, redisClient, constants.ErrAnnouncementNotFound, logger)
	documentService := service.NewResourceService(documentStore, redisClient, constants.ErrDocumentNotFound, logger)
	visitService := service.NewResourceService(visitStore, redisClient, constants.ErrVisitNotFound, logger)
	paymentService := service.NewResourceService(paymentStore, redisClient, constants.ErrPaymentNotFound, logger)
	sectionService := service.NewSectionService(sectionRepo, redisClient, logger)
	settingsService := service.NewSettingsService(settingsRepo, redisClient, logger)
	// 表单记录由 IntakeService 直接写入，列表不走缓存
	contactService := service.NewResourceService(contactStore, nil, constants.ErrContactNotFound, logger)
	membershipService := service.NewResourceService(membershipStore, nil, constants.ErrApplicationNotFound, logger)
	intakeService := service.NewIntakeService(contactStore, membershipStore, files, notifier, cfg.Email.AdminEmail, cfg.Site.Name, logger)
	sitemapService := service.NewSitemapService(announcementStore, cfg.Site.BaseURL)

	systemHandler := handler.NewSystemHandler(sitemapService, cfg.Site.ServiceName, logger)

	// 健康检查
	router.GET("/health", systemHandler.Health)
	router.Static("/uploads", fileStore.Root())

	api := router.Group("/api")
	apis.RegisterPublicRoutes(api, apis.PublicHandlers{
		Auth:          handler.NewAuthHandler(authenticator, logger),
		Upload:        handler.NewUploadHandler(files, logger),
		Announcements: handler.NewResourceHandler(announcementService, logger),
		Documents:     handler.NewResourceHandler(documentService, logger),
		Visits:        handler.NewResourceHandler(visitService, logger),
		Payments:      handler.NewResourceHandler(paymentService, logger),
		Sections:      handler.NewResourceHandler(sectionService.ResourceService, logger),
		Settings:      handler.NewSettingsHandler(settingsService, logger),
		Intake:        handler.NewIntakeHandler(intakeService, files, logger),
		System:        systemHandler,
	})

	adminRouter := api.Group("")
	adminRouter.Use(middleware.SessionAuth(authenticator, logger))
	admin.RegisterAdminRoutes(adminRouter, admin.Handlers{
		Announcements: admin.NewResourceAdminHandler[model.Announcement, *model.Announcement, admin.AnnouncementRequest, admin.AnnouncementPatch](announcementService, admin.BuildAnnouncement, logger),
		Documents:     admin.NewResourceAdminHandler[model.Document, *model.Document, admin.DocumentRequest, admin.DocumentPatch](documentService, admin.BuildDocument, logger),
		Visits:        admin.NewResourceAdminHandler[model.Visit, *model.Visit, admin.VisitRequest, admin.VisitPatch](visitService, admin.BuildVisit, logger),
		Payments:      admin.NewResourceAdminHandler[model.PaymentItem, *model.PaymentItem, admin.PaymentRequest, admin.PaymentPatch](paymentService, admin.BuildPayment, logger),
		Sections:      admin.NewSectionAdminHandler(sectionService, logger),
		Settings:      admin.NewSettingsAdminHandler(settingsService, logger),
		Contacts:      handler.NewResourceHandler(contactService, logger),
		Memberships:   handler.NewResourceHandler(membershipService, logger),
	})

	return router, nil
}

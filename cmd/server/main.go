package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/api"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/async"
	"github.com/nihatdadaloglu/oda/pkg/database"
	"github.com/nihatdadaloglu/oda/pkg/email"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func main() {
	flagSet := pflag.NewFlagSet("oda-server", pflag.ContinueOnError)
	envFile := flagSet.String("env", ".env", "path to the .env file")
	seed := flagSet.Bool("seed", true, "create default admins and settings on start")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("解析参数失败: %v", err)
	}

	// 加载配置
	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 初始化日志
	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()
	logger.Info("配置已加载", "config", cfg.String())

	// 初始化数据库连接
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("无法链接到数据库", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		logger.Fatal("数据库迁移失败", err)
	}

	if *seed {
		bootstrap := service.NewBootstrap(repository.NewUserRepository(db), repository.NewSettingsRepository(db), logger)
		if err := bootstrap.Run(ctx, cfg.Seed, cfg.Site); err != nil {
			logger.Fatal("初始化数据失败", err)
		}
	}

	// 初始化Redis连接，未配置时不使用缓存
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("无法链接到Redis", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 通知邮件队列
	worker := async.NewWorker(cfg.Email.QueueSize, logger)
	worker.Start(cfg.Email.Workers)
	notifier := service.NewDispatcher(worker, email.NewMailer(cfg.Email, logger), logger)

	// 初始化API路由
	router, err := api.SetupRouter(cfg, logger, db, redisClient, notifier)
	if err != nil {
		logger.Fatal("初始化路由失败", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info("服务器启动", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("启动服务器失败", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器被强制关闭", err)
	}

	// 等待已入队的通知发送完
	worker.Stop()
	logger.Info("服务器已正常退出")
}

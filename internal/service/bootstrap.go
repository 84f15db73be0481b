package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// Bootstrap 首次启动时写入默认管理员和默认设置
type Bootstrap struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
	logger   *logger.Logger
}

// NewBootstrap 创建初始化服务
func NewBootstrap(users repository.UserRepository, settings repository.SettingsRepository, logger *logger.Logger) *Bootstrap {
	return &Bootstrap{users: users, settings: settings, logger: logger}
}

// Run 没有管理员时创建配置中的管理员，没有设置时写入站点默认值，可重复执行
func (b *Bootstrap) Run(ctx context.Context, seed config.SeedConfig, site config.SiteConfig) error {
	if err := b.seedAdmins(ctx, seed); err != nil {
		return err
	}
	return b.seedSettings(ctx, site)
}

func (b *Bootstrap) seedAdmins(ctx context.Context, seed config.SeedConfig) error {
	count, err := b.users.CountByRole(ctx, constants.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if len(seed.AdminEmails) == 0 || seed.AdminPassword == "" {
		b.logger.Warn("没有管理员账户，且未配置 SEED_ADMIN_EMAILS/SEED_ADMIN_PASSWORD")
		return nil
	}

	hash, err := HashPassword(seed.AdminPassword)
	if err != nil {
		return err
	}
	for _, email := range seed.AdminEmails {
		user := &model.User{
			Email:        email,
			PasswordHash: hash,
			Role:         constants.RoleAdmin,
			Name:         adminName(email),
		}
		if err := b.users.Create(ctx, user); err != nil {
			return fmt.Errorf("create admin %s: %w", email, err)
		}
		b.logger.Info("已创建管理员账户", "email", email)
	}
	return nil
}

func (b *Bootstrap) seedSettings(ctx context.Context, site config.SiteConfig) error {
	_, err := b.settings.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}

	_, err = b.settings.Save(ctx, func(s *model.Settings) {
		s.Address = site.Address
		s.Phone = site.Phone
		s.Email = site.Email
		s.WhatsApp = site.WhatsApp
		s.MapLocation = site.MapLocation
	})
	if err != nil {
		return fmt.Errorf("create default settings: %w", err)
	}
	b.logger.Info("已写入默认站点设置")
	return nil
}

func adminName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

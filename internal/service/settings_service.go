package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SettingsPatch 设置的部分更新，nil 字段保持不变
type SettingsPatch struct {
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	WhatsApp    *string `json:"whatsapp"`
	MapLocation *string `json:"map_location"`
}

// Apply 将非空字段写入设置
func (p SettingsPatch) Apply(s *model.Settings) {
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.WhatsApp != nil {
		s.WhatsApp = *p.WhatsApp
	}
	if p.MapLocation != nil {
		s.MapLocation = *p.MapLocation
	}
}

// SettingsService 站点设置服务
type SettingsService struct {
	repo  repository.SettingsRepository
	cache *readCache
}

// NewSettingsService 创建设置服务，redisClient 可以为 nil
func NewSettingsService(repo repository.SettingsRepository, redisClient *redis.Client, logger *logger.Logger) *SettingsService {
	return &SettingsService{repo: repo, cache: newReadCache(redisClient, "settings", logger)}
}

// Get 获取设置，尚未保存过时返回空设置
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	cacheKey := s.cache.key(ctx, "current", "")

	var cached model.Settings
	if s.cache.get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return &model.Settings{}, nil
		}
		return nil, err
	}
	s.cache.set(ctx, cacheKey, settings)
	return settings, nil
}

// Update 合并更新设置，不存在时创建
func (s *SettingsService) Update(ctx context.Context, patch SettingsPatch) (*model.Settings, error) {
	settings, err := s.repo.Save(ctx, patch.Apply)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx)
	return settings, nil
}

package service

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// SectionService 页面内容服务，在通用资源操作之外支持按 (page, key) 写入
type SectionService struct {
	*ResourceService[model.PageSection, *model.PageSection]
	repo *repository.PageSectionRepository
}

// NewSectionService 创建页面内容服务
func NewSectionService(repo *repository.PageSectionRepository, redisClient *redis.Client, logger *logger.Logger) *SectionService {
	return &SectionService{
		ResourceService: NewResourceService(repo.Store, redisClient, constants.ErrSectionNotFound, logger),
		repo:            repo,
	}
}

// Upsert 按 (page, key) 写入内容
func (s *SectionService) Upsert(ctx context.Context, page, key, content string) (*model.PageSection, error) {
	if strings.TrimSpace(page) == "" || strings.TrimSpace(key) == "" {
		return nil, apperror.ErrMalformedInput
	}
	section, err := s.repo.Upsert(ctx, page, key, content)
	if err != nil {
		return nil, err
	}
	s.InvalidateCache(ctx)
	return section, nil
}

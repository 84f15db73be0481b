package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// ResourceService 内容资源的增删改查，读取结果在配置了Redis时缓存
type ResourceService[T any, P interface {
	*T
	model.Entity
}] struct {
	store    *repository.Store[T, P]
	cache    *readCache
	notFound string
}

// NewResourceService 创建资源服务，redisClient 可以为 nil
func NewResourceService[T any, P interface {
	*T
	model.Entity
}](store *repository.Store[T, P], redisClient *redis.Client, notFound string, logger *logger.Logger) *ResourceService[T, P] {
	return &ResourceService[T, P]{
		store:    store,
		cache:    newReadCache(redisClient, store.Schema().Table, logger),
		notFound: notFound,
	}
}

// Schema 返回资源的表结构
func (s *ResourceService[T, P]) Schema() repository.Schema {
	return s.store.Schema()
}

// List 分页查询
func (s *ResourceService[T, P]) List(ctx context.Context, q repository.ListQuery) (*model.Page[T], error) {
	q = q.Normalize(s.store.Schema().DefaultLimit)
	query, _ := json.Marshal(q)
	cacheKey := s.cache.key(ctx, "list", string(query))

	var page model.Page[T]
	if s.cache.get(ctx, cacheKey, &page) {
		return &page, nil
	}

	result, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, cacheKey, result)
	return result, nil
}

// Get 根据ID获取
func (s *ResourceService[T, P]) Get(ctx context.Context, id string) (P, error) {
	cacheKey := s.cache.key(ctx, "detail", id)

	var cached T
	if s.cache.get(ctx, cacheKey, &cached) {
		return P(&cached), nil
	}

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	s.cache.set(ctx, cacheKey, record)
	return record, nil
}

// Create 创建
func (s *ResourceService[T, P]) Create(ctx context.Context, record P) error {
	if err := s.store.Create(ctx, record); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// Update 读取记录，用 apply 修改后写回
func (s *ResourceService[T, P]) Update(ctx context.Context, id string, apply func(P)) (P, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	apply(record)
	if err := s.store.Update(ctx, record); err != nil {
		return nil, s.translate(err)
	}
	s.InvalidateCache(ctx)
	return record, nil
}

// Delete 删除
func (s *ResourceService[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	s.InvalidateCache(ctx)
	return nil
}

// InvalidateCache 使该资源的所有缓存失效
func (s *ResourceService[T, P]) InvalidateCache(ctx context.Context) {
	s.cache.invalidate(ctx)
}

func (s *ResourceService[T, P]) translate(err error) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound(s.notFound)
	}
	return err
}

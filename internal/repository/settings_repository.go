package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
)

const settingsSingleton = 1

// SettingsRepository 站点设置仓库，表中最多一行
type SettingsRepository interface {
	// Get 获取设置，不存在时返回 apperror.ErrNotFound
	Get(ctx context.Context) (*model.Settings, error)
	// Save 用 apply 修改现有设置并保存，不存在时以空设置为基础创建
	Save(ctx context.Context, apply func(*model.Settings)) (*model.Settings, error)
}

type settingsRepository struct {
	store *Store[model.Settings, *model.Settings]
}

// NewSettingsRepository 创建设置仓库实例
func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{store: NewStore[model.Settings](db, SettingsSchema)}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	return r.store.FindOne(ctx, map[string]interface{}{"singleton": settingsSingleton})
}

func (r *settingsRepository) Save(ctx context.Context, apply func(*model.Settings)) (*model.Settings, error) {
	settings, err := r.merge(ctx, apply)
	if err == nil || !errors.Is(err, apperror.ErrNotFound) {
		return settings, err
	}

	settings = &model.Settings{Singleton: settingsSingleton}
	apply(settings)
	createErr := r.store.Create(ctx, settings)
	if createErr == nil {
		return settings, nil
	}

	// 另一个请求已先创建
	settings, err = r.merge(ctx, apply)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, createErr
	}
	return settings, err
}

func (r *settingsRepository) merge(ctx context.Context, apply func(*model.Settings)) (*model.Settings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	apply(settings)
	settings.Singleton = settingsSingleton
	if err := r.store.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

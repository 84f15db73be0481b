package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
)

// PageSectionRepository 页面内容仓库，(page, key) 唯一
type PageSectionRepository struct {
	*Store[model.PageSection, *model.PageSection]
}

// NewPageSectionRepository 创建页面内容仓库实例
func NewPageSectionRepository(db *sqlx.DB) *PageSectionRepository {
	return &PageSectionRepository{Store: NewStore[model.PageSection](db, PageSectionSchema)}
}

// Upsert 按 (page, key) 更新内容，不存在时创建。
// 并发创建时唯一约束使其中一方插入失败，失败方改为更新已存在的记录。
func (r *PageSectionRepository) Upsert(ctx context.Context, page, key, content string) (*model.PageSection, error) {
	section, err := r.update(ctx, page, key, content)
	if err == nil || !errors.Is(err, apperror.ErrNotFound) {
		return section, err
	}

	section = &model.PageSection{Page: page, Key: key, Content: content}
	createErr := r.Create(ctx, section)
	if createErr == nil {
		return section, nil
	}

	section, err = r.update(ctx, page, key, content)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, createErr
	}
	return section, err
}

func (r *PageSectionRepository) update(ctx context.Context, page, key, content string) (*model.PageSection, error) {
	section, err := r.FindOne(ctx, map[string]interface{}{"page": page, "section_key": key})
	if err != nil {
		return nil, err
	}
	section.Content = content
	if err := r.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

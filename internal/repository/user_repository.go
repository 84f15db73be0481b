package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nihatdadaloglu/oda/internal/model"
)

// UserRepository 管理员账户仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type userRepository struct {
	store *Store[model.User, *model.User]
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{store: NewStore[model.User](db, UserSchema)}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.store.Create(ctx, user)
}

// GetByEmail 根据邮箱获取用户，不存在时返回 apperror.ErrNotFound
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.store.FindOne(ctx, map[string]interface{}{"email": email})
}

// CountByRole 统计某个角色的用户数
func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.store.Count(ctx, map[string]interface{}{"role": role})
}

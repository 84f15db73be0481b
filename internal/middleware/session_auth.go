package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// ContextUserKey 当前用户在 gin.Context 中的键
const ContextUserKey = "user"

// TokenAuthenticator 根据令牌返回当前用户
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// SessionAuth 要求请求携带有效的管理员令牌
func SessionAuth(auth TokenAuthenticator, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, log, err)
			return
		}
		if user.Role != constants.RoleAdmin {
			response.Error(c, log, apperror.ErrInsufficientRole)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser 返回通过认证的用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

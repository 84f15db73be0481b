package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
)

// UserLookup 按邮箱查找用户，不存在时返回 apperror.ErrNotFound
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Session 登录成功后返回给客户端的会话
type Session struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   model.Timestamp `json:"expires_at"`
	User        *model.User     `json:"user"`
}

// Claims 会话令牌的声明，sub 为用户邮箱
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator 签发和校验会话令牌。令牌无状态，签发后在过期前一直有效
type Authenticator struct {
	users  UserLookup
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator 创建认证器
func NewAuthenticator(users UserLookup, cfg config.AuthConfig) *Authenticator {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue 校验邮箱和密码并签发令牌。用户不存在和密码错误返回同一个错误
func (a *Authenticator) Issue(ctx context.Context, email, password string) (*Session, error) {
	user, err := a.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   model.NewTimestamp(expiresAt),
		User:        user,
	}, nil
}

// Authenticate 校验令牌并返回当前用户。接受 "Bearer <token>" 或裸令牌
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (*model.User, error) {
	token := bearerToken(raw)
	if token == "" {
		return nil, apperror.ErrMissingToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || claims.Subject == "" {
		return nil, apperror.ErrInvalidToken
	}

	// 每次都重新查询，删除的用户立即失效
	user, err := a.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrUnknownSubject
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func bearerToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	if strings.EqualFold(raw, "bearer") {
		return ""
	}
	return raw
}

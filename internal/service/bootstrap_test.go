package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/testutil"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func TestBootstrapRun(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)
	users := repository.NewUserRepository(db)
	settings := repository.NewSettingsRepository(db)
	b := NewBootstrap(users, settings, logger.NewNop())

	seed := config.SeedConfig{AdminEmails: []string{"a@example.com", "b@example.com"}, AdminPassword: "baslangic"}
	site := config.SiteConfig{Phone: "0352", Email: "info@example.com"}
	require.NoError(t, b.Run(ctx, seed, site))
	// 第二次执行不重复创建
	require.NoError(t, b.Run(ctx, seed, config.SiteConfig{Phone: "changed"}))

	n, err := users.CountByRole(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	u, err := users.GetByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("baslangic", u.PasswordHash))
	assert.Equal(t, "b", u.Name)

	s, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0352", s.Phone)
}

func TestBootstrapWithoutSeedConfig(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)
	users := repository.NewUserRepository(db)

	require.NoError(t, NewBootstrap(users, repository.NewSettingsRepository(db), logger.NewNop()).Run(ctx, config.SeedConfig{}, config.SiteConfig{}))

	n, err := users.CountByRole(ctx, "admin")
	require.NoError(t, err)
	assert.Zero(t, n)
}

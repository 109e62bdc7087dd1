//go:build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/mia/data-service/internal/domain/shared"
	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/migration"
	"github.com/mia/data-service/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newPostgresDB starts a disposable PostgreSQL container and applies the
// bundled migrations to it
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("mia_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.New(sqlDB, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, m.Up())

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	return db
}

func TestPostgres_ShopLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newPostgresDB(t)
	shops := NewGormShopRepository(db)
	sites := NewGormSiteRepository(db)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	created := make([]*shop.Shop, 3)
	for i, name := range []string{"Ramen", "Bakery", "Florist"} {
		s, err := shop.NewShop(name, "owner-1", "")
		require.NoError(t, err)
		s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		s.UpdatedAt = s.CreatedAt
		require.NoError(t, shops.Create(ctx, s))
		created[i] = s
	}

	total, err := shops.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	page, err := shared.NewPage(1, 2)
	require.NoError(t, err)
	listed, err := shops.List(ctx, page)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, created[1].ID, listed[0].ID)
	assert.Equal(t, created[2].ID, listed[1].ID)

	target := created[0]
	target.ApplyIntegration(shop.IntegrationInput{
		ChannelSecret:      "secret",
		ChannelAccessToken: "token",
	}, &shop.BotInfo{BotID: "U123", DisplayName: "Ramen Bot", BasicID: "@ramen"})
	require.NoError(t, target.SetTier("pro"))
	require.NoError(t, shops.Update(ctx, target))

	found, err := shops.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "pro", found.Tier)
	assert.Equal(t, "secret", found.LineConfig[shop.KeyChannelSecret])
	assert.Equal(t, "Ramen Bot", found.LineConfig[shop.KeyDisplayName])
	assert.True(t, found.UpdatedAt.After(found.CreatedAt) || found.UpdatedAt.Equal(found.CreatedAt))

	_, err = shops.FindByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	site, err := shop.NewSite(target.ID, shop.JSONMap{"theme": "light"})
	require.NoError(t, err)
	require.NoError(t, db.Create(models.SiteModelFromDomain(site)).Error)

	listedSites, err := sites.ListByShop(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, listedSites, 1)
	assert.Equal(t, site.ID, listedSites[0].ID)
	assert.Equal(t, shop.SiteStatusDraft, listedSites[0].Status)
}

func TestPostgres_SiteRequiresShop(t *testing.T) {
	db := newPostgresDB(t)

	site, err := shop.NewSite("11111111-1111-1111-1111-111111111111", nil)
	require.NoError(t, err)
	assert.Error(t, db.Create(models.SiteModelFromDomain(site)).Error)
}

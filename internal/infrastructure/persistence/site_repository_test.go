package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSiteRepository_ListByShop(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormSiteRepository(db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	seed := func(shopID string, offset time.Duration, slug *string) *shop.Site {
		site, err := shop.NewSite(shopID, shop.JSONMap{"theme": "dark"})
		require.NoError(t, err)
		site.CreatedAt = base.Add(offset)
		site.UpdatedAt = site.CreatedAt
		site.Slug = slug
		require.NoError(t, db.Create(models.SiteModelFromDomain(site)).Error)
		return site
	}

	slug := "ramen"
	second := seed("shop-1", time.Hour, &slug)
	first := seed("shop-1", 0, nil)
	seed("shop-2", 0, nil)

	sites, err := repo.ListByShop(ctx, "shop-1")
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, first.ID, sites[0].ID)
	assert.Equal(t, second.ID, sites[1].ID)
	assert.Equal(t, shop.SiteStatusDraft, sites[1].Status)
	require.NotNil(t, sites[1].Slug)
	assert.Equal(t, "ramen", *sites[1].Slug)
	assert.Equal(t, "dark", sites[0].ConfigJSON["theme"])

	none, err := repo.ListByShop(ctx, "shop-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

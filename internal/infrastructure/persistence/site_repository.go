package persistence

import (
	"context"

	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSiteRepository implements shop.SiteRepository using GORM
type GormSiteRepository struct {
	db *gorm.DB
}

var _ shop.SiteRepository = (*GormSiteRepository)(nil)

// NewGormSiteRepository creates a new GormSiteRepository
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// ListByShop returns the sites of a shop, oldest first
func (r *GormSiteRepository) ListByShop(ctx context.Context, shopID string) ([]shop.Site, error) {
	var rows []models.SiteModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at ASC").
		Order("site_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sites := make([]shop.Site, len(rows))
	for i := range rows {
		sites[i] = *rows[i].ToDomain()
	}
	return sites, nil
}

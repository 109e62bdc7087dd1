package persistence

import (
	"context"
	"errors"

	"github.com/mia/data-service/internal/domain/shared"
	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormShopRepository implements shop.ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

var _ shop.ShopRepository = (*GormShopRepository)(nil)

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Create inserts a new shop
func (r *GormShopRepository) Create(ctx context.Context, s *shop.Shop) error {
	return r.db.WithContext(ctx).Create(models.ShopModelFromDomain(s)).Error
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id string) (*shop.Shop, error) {
	var model models.ShopModel
	if err := r.db.WithContext(ctx).Where("shop_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns one page of shops ordered by creation time, ties broken by id
func (r *GormShopRepository) List(ctx context.Context, page shared.Page) ([]shop.Shop, error) {
	var rows []models.ShopModel
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("shop_id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, len(rows))
	for i := range rows {
		shops[i] = *rows[i].ToDomain()
	}
	return shops, nil
}

// Count returns the number of stored shops
func (r *GormShopRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ShopModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update writes every column of the shop. There is no version check.
func (r *GormShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	model := models.ShopModelFromDomain(s)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("owner_uid", "name", "tier", "line_config", "ai_settings", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

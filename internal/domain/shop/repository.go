package shop

import (
	"context"

	"github.com/mia/data-service/internal/domain/shared"
)

// ShopRepository defines the interface for shop persistence.
// Updates are full-row writes without version checks; concurrent writers
// to the same shop race and the last write wins.
type ShopRepository interface {
	// Create inserts a new shop
	Create(ctx context.Context, shop *Shop) error

	// FindByID finds a shop by its ID, returning shared.ErrNotFound if absent
	FindByID(ctx context.Context, id string) (*Shop, error)

	// List returns a page of shops in store order
	List(ctx context.Context, page shared.Page) ([]Shop, error)

	// Count returns the total number of shops
	Count(ctx context.Context) (int64, error)

	// Update persists the full current state of a previously loaded shop
	Update(ctx context.Context, shop *Shop) error
}

// SiteRepository defines read access to shop sites
type SiteRepository interface {
	// ListByShop returns all sites of a shop ordered by creation time
	ListByShop(ctx context.Context, shopID string) ([]Site, error)
}

package shop

import (
	"github.com/mia/data-service/internal/domain/shared"
)

// SiteStatus is the publication state of a shop site
type SiteStatus string

// SiteStatusDraft is the status of a newly created site
const SiteStatusDraft SiteStatus = "draft"

// Site is a storefront page configuration owned by a shop
type Site struct {
	shared.BaseEntity
	ShopID     string
	ConfigJSON JSONMap
	Status     SiteStatus
	Slug       *string
}

// NewSite creates a draft site for the given shop
func NewSite(shopID string, config JSONMap) (*Site, error) {
	if shopID == "" {
		return nil, shared.NewValidationError("shop_id is required")
	}
	if config == nil {
		config = JSONMap{}
	}
	return &Site{
		BaseEntity: shared.NewBaseEntity(),
		ShopID:     shopID,
		ConfigJSON: config,
		Status:     SiteStatusDraft,
	}, nil
}

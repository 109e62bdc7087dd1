package shop

import (
	"time"

	"github.com/mia/data-service/internal/domain/shop"
)

// ShopDTO is the admin view of a shop
type ShopDTO struct {
	ShopID     string         `json:"shop_id"`
	OwnerUID   string         `json:"owner_uid"`
	Name       string         `json:"name"`
	Tier       string         `json:"tier"`
	LineConfig map[string]any `json:"line_config"`
	AISettings map[string]any `json:"ai_settings"`
	PublicURL  string         `json:"public_url"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SiteDTO is the admin view of a shop site
type SiteDTO struct {
	SiteID     string         `json:"site_id"`
	ShopID     string         `json:"shop_id"`
	ConfigJSON map[string]any `json:"config_json"`
	Status     string         `json:"status"`
	Slug       *string        `json:"slug"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ListShopsInput selects a page of shops. Zero Limit means the default.
type ListShopsInput struct {
	Offset int
	Limit  int
}

// CreateShopInput contains input for creating a shop
type CreateShopInput struct {
	Name     string
	OwnerUID string
	Tier     string
}

// UpdateIntegrationInput contains the LINE channel fields of an integration update
type UpdateIntegrationInput struct {
	ChannelSecret      string
	ChannelAccessToken string
	BotBasicID         string
	DisplayName        string
}

func toShopDTO(s *shop.Shop, baseURL string) ShopDTO {
	return ShopDTO{
		ShopID:     s.ID,
		OwnerUID:   s.OwnerUID,
		Name:       s.Name,
		Tier:       s.Tier,
		LineConfig: s.LineConfig,
		AISettings: s.AISettings,
		PublicURL:  s.PublicURL(baseURL),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSiteDTO(s *shop.Site) SiteDTO {
	return SiteDTO{
		SiteID:     s.ID,
		ShopID:     s.ShopID,
		ConfigJSON: s.ConfigJSON,
		Status:     string(s.Status),
		Slug:       s.Slug,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

package models

import (
	"github.com/mia/data-service/internal/domain/shop"
)

// ShopModel is the persistence model for the shops table
type ShopModel struct {
	ShopID     string          `gorm:"column:shop_id;type:varchar(36);primaryKey"`
	OwnerUID   string          `gorm:"column:owner_uid;type:varchar(128);not null;index"`
	Name       string          `gorm:"type:varchar(200);not null"`
	Tier       string          `gorm:"type:varchar(50);not null;default:free"`
	LineConfig shop.LineConfig `gorm:"column:line_config;type:jsonb"`
	AISettings shop.JSONMap    `gorm:"column:ai_settings;type:jsonb"`
	TimestampModel
}

// TableName returns the table name for GORM
func (ShopModel) TableName() string {
	return "shops"
}

// ToDomain converts the persistence model to a domain entity
func (m *ShopModel) ToDomain() *shop.Shop {
	return &shop.Shop{
		BaseEntity: m.toBaseEntity(m.ShopID),
		OwnerUID:   m.OwnerUID,
		Name:       m.Name,
		Tier:       m.Tier,
		LineConfig: m.LineConfig,
		AISettings: m.AISettings,
	}
}

// ShopModelFromDomain converts a domain entity to its persistence model
func ShopModelFromDomain(s *shop.Shop) *ShopModel {
	return &ShopModel{
		ShopID:         s.ID,
		OwnerUID:       s.OwnerUID,
		Name:           s.Name,
		Tier:           s.Tier,
		LineConfig:     s.LineConfig,
		AISettings:     s.AISettings,
		TimestampModel: timestampsFrom(s.BaseEntity),
	}
}

// SiteModel is the persistence model for the shop_sites table
type SiteModel struct {
	SiteID     string       `gorm:"column:site_id;type:varchar(36);primaryKey"`
	ShopID     string       `gorm:"column:shop_id;type:varchar(36);not null;index"`
	ConfigJSON shop.JSONMap `gorm:"column:config_json;type:jsonb"`
	Status     string       `gorm:"type:varchar(20);not null;default:draft"`
	Slug       *string      `gorm:"type:varchar(255);uniqueIndex"`
	TimestampModel
}

// TableName returns the table name for GORM
func (SiteModel) TableName() string {
	return "shop_sites"
}

// ToDomain converts the persistence model to a domain entity
func (m *SiteModel) ToDomain() *shop.Site {
	return &shop.Site{
		BaseEntity: m.toBaseEntity(m.SiteID),
		ShopID:     m.ShopID,
		ConfigJSON: m.ConfigJSON,
		Status:     shop.SiteStatus(m.Status),
		Slug:       m.Slug,
	}
}

// SiteModelFromDomain converts a domain entity to its persistence model
func SiteModelFromDomain(s *shop.Site) *SiteModel {
	return &SiteModel{
		SiteID:         s.ID,
		ShopID:         s.ShopID,
		ConfigJSON:     s.ConfigJSON,
		Status:         string(s.Status),
		Slug:           s.Slug,
		TimestampModel: timestampsFrom(s.BaseEntity),
	}
}

package models

import (
	"time"

	"github.com/mia/data-service/internal/domain/shared"
)

// TimestampModel provides the audit timestamps shared by all tables.
// Primary keys are declared per model since each table names its own.
// The domain owns both timestamps, so gorm's auto-tracking is off.
type TimestampModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (m TimestampModel) toBaseEntity(id string) shared.BaseEntity {
	return shared.BaseEntity{
		ID:        id,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func timestampsFrom(e shared.BaseEntity) TimestampModel {
	return TimestampModel{CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

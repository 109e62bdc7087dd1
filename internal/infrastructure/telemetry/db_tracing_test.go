package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type probe struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&probe{}))
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	rec := useRecorder(t)
	db := openSQLite(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: false}, zap.NewNop()))
	require.NoError(t, db.WithContext(context.Background()).Create(&probe{Name: "a"}).Error)

	assert.Empty(t, rec.Ended())
}

func TestRegisterDBTracing_Enabled(t *testing.T) {
	rec := useRecorder(t)
	db := openSQLite(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "mia"}, zap.NewNop()))

	ctx, parent := StartSpan(context.Background(), "shop.create")
	require.NoError(t, db.WithContext(ctx).Create(&probe{Name: "a"}).Error)
	parent.End()

	var tagged bool
	for _, s := range rec.Ended() {
		if v, ok := attrMap(s.Attributes())["db.sql.table"]; ok && v.AsString() == "probes" {
			tagged = true
			assert.Equal(t, parent.SpanContext().TraceID(), s.SpanContext().TraceID())
		}
	}
	assert.True(t, tagged, "expected a database span tagged with the table name")
}

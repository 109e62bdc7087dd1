package telemetry

import (
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls gorm query tracing
type DBTracingConfig struct {
	Enabled bool
	DBName  string
	// LogFullSQL keeps bound query variables in span statements; development only.
	LogFullSQL bool
}

// RegisterDBTracing installs the otelgorm plugin plus a callback that tags
// spans with table name and affected rows.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	// The annotation must run while the otelgorm span is still open.
	cb := db.Callback()
	registrations := []error{
		cb.Create().After("gorm:create").Before("otel:after:create").Register("mia:span_attrs_create", annotateSpan),
		cb.Query().After("gorm:query").Before("otel:after:query").Register("mia:span_attrs_query", annotateSpan),
		cb.Update().After("gorm:update").Before("otel:after:update").Register("mia:span_attrs_update", annotateSpan),
		cb.Row().After("gorm:row").Before("otel:after:row").Register("mia:span_attrs_row", annotateSpan),
	}
	if err := errors.Join(registrations...); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.String("db_name", cfg.DBName),
		zap.Bool("log_full_sql", cfg.LogFullSQL),
	)
	return nil
}

func annotateSpan(db *gorm.DB) {
	if db.Statement == nil || db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		RecordError(span, db.Error)
	}
}

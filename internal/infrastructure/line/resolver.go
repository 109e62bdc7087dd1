package line

import (
	"context"

	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"github.com/mia/data-service/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

type botInfoFetcher interface {
	GetBotInfo(ctx context.Context, channelAccessToken string) (*shop.BotInfo, error)
}

// Resolver adapts Client to shop.BotInfoResolver. Lookup failures are logged
// and recorded on the trace, then reported as "not resolved".
type Resolver struct {
	client botInfoFetcher
	logger *zap.Logger
}

var _ shop.BotInfoResolver = (*Resolver)(nil)

// NewResolver creates a Resolver
func NewResolver(client *Client, log *zap.Logger) *Resolver {
	return &Resolver{client: client, logger: log.Named("line")}
}

// ResolveBotInfo implements shop.BotInfoResolver
func (r *Resolver) ResolveBotInfo(ctx context.Context, channelAccessToken string) *shop.BotInfo {
	ctx, span := telemetry.StartClientSpan(ctx, "line.get_bot_info", telemetry.AttrProvider, "line")
	defer span.End()

	info, err := r.client.GetBotInfo(ctx, channelAccessToken)
	if err != nil {
		status := StatusCode(err)
		telemetry.RecordError(span, err)
		telemetry.AddEvent(span, "bot_info_unresolved", "http.status_code", status)
		logger.Enrich(ctx, r.logger).Warn("LINE bot info lookup failed",
			zap.Int("status", status),
			zap.Error(err),
		)
		return nil
	}

	telemetry.SetAttributes(span, "line.bot_id", info.BotID)
	return info
}

package shop

import (
	"context"
	"errors"

	"github.com/mia/data-service/internal/domain/shared"
	"github.com/mia/data-service/internal/domain/shop"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"github.com/mia/data-service/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const spanService = "shop"

// ShopService handles admin operations on shops
type ShopService struct {
	shopRepo shop.ShopRepository
	siteRepo shop.SiteRepository
	resolver shop.BotInfoResolver
	baseURL  string
	logger   *zap.Logger
}

// NewShopService creates a new shop service. baseURL is the site base used
// to derive each shop's public_url.
func NewShopService(
	shopRepo shop.ShopRepository,
	siteRepo shop.SiteRepository,
	resolver shop.BotInfoResolver,
	baseURL string,
	logger *zap.Logger,
) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		siteRepo: siteRepo,
		resolver: resolver,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// List returns one page of shops with the total count
func (s *ShopService) List(ctx context.Context, input ListShopsInput) (*shared.Paginated[ShopDTO], error) {
	page, err := shared.NewPage(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "list",
		telemetry.AttrOffset, page.Offset, telemetry.AttrLimit, page.Limit)
	defer span.End()

	shops, err := s.shopRepo.List(ctx, page)
	if err != nil {
		return nil, s.internal(ctx, span, "Failed to list shops", err)
	}
	total, err := s.shopRepo.Count(ctx)
	if err != nil {
		return nil, s.internal(ctx, span, "Failed to count shops", err)
	}

	items := make([]ShopDTO, len(shops))
	for i := range shops {
		items[i] = toShopDTO(&shops[i], s.baseURL)
	}
	telemetry.SetAttributes(span, telemetry.AttrItemCount, len(shops))
	result := shared.NewPaginated(items, total, page)
	return &result, nil
}

// Get returns a single shop
func (s *ShopService) Get(ctx context.Context, id string) (*ShopDTO, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "get", telemetry.AttrShopID, id)
	defer span.End()

	sh, err := s.load(ctx, span, id)
	if err != nil {
		return nil, err
	}
	dto := toShopDTO(sh, s.baseURL)
	return &dto, nil
}

// Create creates a shop with a fresh id. The tier defaults to free.
func (s *ShopService) Create(ctx context.Context, input CreateShopInput) (*ShopDTO, error) {
	sh, err := shop.NewShop(input.Name, input.OwnerUID, input.Tier)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "create",
		telemetry.AttrShopID, sh.ID, telemetry.AttrShopTier, sh.Tier)
	defer span.End()

	if err := s.shopRepo.Create(ctx, sh); err != nil {
		return nil, s.internal(ctx, span, "Failed to create shop", err)
	}

	s.log(ctx).Info("Shop created",
		zap.String("shop_id", sh.ID),
		zap.String("owner_uid", sh.OwnerUID),
		zap.String("tier", sh.Tier))

	dto := toShopDTO(sh, s.baseURL)
	return &dto, nil
}

// UpdateIntegration stores new LINE channel credentials and refreshes the
// bot metadata from the provider when it can be resolved. No transaction is
// held across the provider call.
func (s *ShopService) UpdateIntegration(ctx context.Context, id string, input UpdateIntegrationInput) (*ShopDTO, error) {
	in := shop.IntegrationInput{
		ChannelSecret:      input.ChannelSecret,
		ChannelAccessToken: input.ChannelAccessToken,
		BotID:              input.BotBasicID,
		DisplayName:        input.DisplayName,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "update_integration", telemetry.AttrShopID, id)
	defer span.End()

	sh, err := s.load(ctx, span, id)
	if err != nil {
		return nil, err
	}

	resolved := s.resolver.ResolveBotInfo(ctx, in.ChannelAccessToken)
	sh.ApplyIntegration(in, resolved)

	if err := s.update(ctx, span, sh); err != nil {
		return nil, err
	}

	botID, _ := sh.LineConfig.String(shop.KeyBotID)
	s.log(ctx).Info("Shop integration updated",
		zap.String("shop_id", sh.ID),
		zap.Bool("bot_info_resolved", resolved != nil),
		zap.String("bot_id", botID))

	dto := toShopDTO(sh, s.baseURL)
	return &dto, nil
}

// UpdateTier changes the service tier of a shop
func (s *ShopService) UpdateTier(ctx context.Context, id, tier string) (*ShopDTO, error) {
	tier, err := shop.NormalizeTier(tier)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "update_tier",
		telemetry.AttrShopID, id, telemetry.AttrShopTier, tier)
	defer span.End()

	sh, err := s.load(ctx, span, id)
	if err != nil {
		return nil, err
	}
	previous := sh.Tier
	if err := sh.SetTier(tier); err != nil {
		return nil, err
	}

	if err := s.update(ctx, span, sh); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Shop tier updated",
		zap.String("shop_id", sh.ID),
		zap.String("from", previous),
		zap.String("to", sh.Tier))

	dto := toShopDTO(sh, s.baseURL)
	return &dto, nil
}

// ListSites returns the sites of an existing shop
func (s *ShopService) ListSites(ctx context.Context, shopID string) ([]SiteDTO, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "list_sites", telemetry.AttrShopID, shopID)
	defer span.End()

	if _, err := s.load(ctx, span, shopID); err != nil {
		return nil, err
	}
	sites, err := s.siteRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, s.internal(ctx, span, "Failed to list shop sites", err)
	}

	out := make([]SiteDTO, len(sites))
	for i := range sites {
		out[i] = toSiteDTO(&sites[i])
	}
	return out, nil
}

func (s *ShopService) load(ctx context.Context, span trace.Span, id string) (*shop.Shop, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Shop not found")
		}
		return nil, s.internal(ctx, span, "Failed to find shop", err)
	}
	return sh, nil
}

func (s *ShopService) update(ctx context.Context, span trace.Span, sh *shop.Shop) error {
	if err := s.shopRepo.Update(ctx, sh); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("Shop not found")
		}
		return s.internal(ctx, span, "Failed to update shop", err)
	}
	return nil
}

// internal logs and records err, returning an opaque internal error
func (s *ShopService) internal(ctx context.Context, span trace.Span, msg string, err error) error {
	telemetry.RecordError(span, err)
	s.log(ctx).Error(msg, zap.Error(err))
	return shared.NewDomainError(shared.CodeInternal, msg)
}

func (s *ShopService) log(ctx context.Context) *zap.Logger {
	return logger.Enrich(ctx, s.logger)
}

package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	shopapp "github.com/mia/data-service/internal/application/shop"
	"github.com/mia/data-service/internal/domain/shared"
	"github.com/mia/data-service/internal/interfaces/http/dto"
)

// ShopService is the application API the shop handler depends on
type ShopService interface {
	List(ctx context.Context, input shopapp.ListShopsInput) (*shared.Paginated[shopapp.ShopDTO], error)
	Get(ctx context.Context, id string) (*shopapp.ShopDTO, error)
	Create(ctx context.Context, input shopapp.CreateShopInput) (*shopapp.ShopDTO, error)
	UpdateIntegration(ctx context.Context, id string, input shopapp.UpdateIntegrationInput) (*shopapp.ShopDTO, error)
	UpdateTier(ctx context.Context, id, tier string) (*shopapp.ShopDTO, error)
	ListSites(ctx context.Context, shopID string) ([]shopapp.SiteDTO, error)
}

// ShopHandler handles the admin shop endpoints
type ShopHandler struct {
	BaseHandler
	service ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(service ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// List godoc
// @Summary      List shops
// @Tags         admin
// @Produce      json
// @Param        offset query int false "Offset" default(0)
// @Param        limit  query int false "Page size" default(20) maximum(100)
// @Security     BearerAuth
// @Router       /admin/shops [get]
func (h *ShopHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), shopapp.ListShopsInput{
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// Get godoc
// @Summary      Get a shop
// @Tags         admin
// @Produce      json
// @Param        shop_id path string true "Shop ID"
// @Security     BearerAuth
// @Router       /admin/shops/{shop_id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := h.shopID(c)
	if !ok {
		return
	}

	shop, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// Create godoc
// @Summary      Create a shop
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body CreateShopRequest true "Shop"
// @Security     BearerAuth
// @Router       /admin/shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	shop, err := h.service.Create(c.Request.Context(), shopapp.CreateShopInput{
		Name:     req.Name,
		OwnerUID: req.OwnerUID,
		Tier:     req.Tier,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, shop)
}

// UpdateIntegration godoc
// @Summary      Update a shop's LINE integration
// @Description  Stores channel credentials and refreshes bot metadata from LINE when it can be resolved
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        shop_id path string true "Shop ID"
// @Param        request body UpdateIntegrationRequest true "Integration"
// @Security     BearerAuth
// @Router       /admin/shops/{shop_id}/integration [patch]
func (h *ShopHandler) UpdateIntegration(c *gin.Context) {
	id, ok := h.shopID(c)
	if !ok {
		return
	}
	var req UpdateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	shop, err := h.service.UpdateIntegration(c.Request.Context(), id, shopapp.UpdateIntegrationInput{
		ChannelSecret:      req.ChannelSecret,
		ChannelAccessToken: req.ChannelAccessToken,
		BotBasicID:         req.BotBasicID,
		DisplayName:        req.DisplayName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// UpdateTier godoc
// @Summary      Update a shop's tier
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        shop_id path string true "Shop ID"
// @Param        request body UpdateTierRequest true "Tier"
// @Security     BearerAuth
// @Router       /admin/shops/{shop_id}/tier [patch]
func (h *ShopHandler) UpdateTier(c *gin.Context) {
	id, ok := h.shopID(c)
	if !ok {
		return
	}
	var req UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	shop, err := h.service.UpdateTier(c.Request.Context(), id, req.Tier)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// ListSites godoc
// @Summary      List a shop's sites
// @Tags         admin
// @Produce      json
// @Param        shop_id path string true "Shop ID"
// @Security     BearerAuth
// @Router       /admin/shops/{shop_id}/sites [get]
func (h *ShopHandler) ListSites(c *gin.Context) {
	id, ok := h.shopID(c)
	if !ok {
		return
	}

	sites, err := h.service.ListSites(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sites)
}

func (h *ShopHandler) shopID(c *gin.Context) (string, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.ValidationError(c, err)
		return "", false
	}
	return req.ID, true
}

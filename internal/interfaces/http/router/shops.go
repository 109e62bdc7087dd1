package router

import "github.com/mia/data-service/internal/interfaces/http/handler"

// ShopRoutes maps the admin shop endpoints onto a domain group
func ShopRoutes(h *handler.ShopHandler) *DomainGroup {
	return NewDomainGroup("/shops").
		GET("", h.List).
		POST("", h.Create).
		GET("/:shop_id", h.Get).
		PATCH("/:shop_id/integration", h.UpdateIntegration).
		PATCH("/:shop_id/tier", h.UpdateTier).
		GET("/:shop_id/sites", h.ListSites)
}

package handler

// CreateShopRequest is the body of POST /admin/shops
type CreateShopRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	OwnerUID string `json:"owner_uid" binding:"required,max=128"`
	Tier     string `json:"tier" binding:"omitempty,max=50"`
}

// UpdateIntegrationRequest is the body of PATCH /admin/shops/:shop_id/integration.
// botBasicId and displayName are fallbacks for values LINE does not report.
type UpdateIntegrationRequest struct {
	ChannelSecret      string `json:"channelSecret" binding:"required"`
	ChannelAccessToken string `json:"channelAccessToken" binding:"required"`
	BotBasicID         string `json:"botBasicId"`
	DisplayName        string `json:"displayName"`
}

// UpdateTierRequest is the body of PATCH /admin/shops/:shop_id/tier
type UpdateTierRequest struct {
	Tier string `json:"tier" binding:"required,max=50"`
}

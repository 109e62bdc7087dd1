package shop

import "context"

// BotInfo is the bot metadata the messaging provider reports for a channel
// access token. Empty fields were not resolved.
type BotInfo struct {
	BotID       string
	DisplayName string
	PictureURL  string
	BasicID     string
}

// BotInfoResolver performs a best-effort live lookup of bot metadata.
// It returns nil when the lookup fails for any reason; failures never
// reach the caller.
type BotInfoResolver interface {
	ResolveBotInfo(ctx context.Context, channelAccessToken string) *BotInfo
}

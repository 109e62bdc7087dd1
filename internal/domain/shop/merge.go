package shop

import (
	"strings"

	"github.com/mia/data-service/internal/domain/shared"
)

// IntegrationInput carries the caller-supplied LINE channel fields.
// BotID and DisplayName are optional fallbacks for values the provider
// may not resolve.
type IntegrationInput struct {
	ChannelSecret      string
	ChannelAccessToken string
	BotID              string
	DisplayName        string
}

// Validate checks the required credentials are present
func (in IntegrationInput) Validate() error {
	if strings.TrimSpace(in.ChannelSecret) == "" {
		return shared.NewValidationError("channelSecret is required")
	}
	if strings.TrimSpace(in.ChannelAccessToken) == "" {
		return shared.NewValidationError("channelAccessToken is required")
	}
	return nil
}

// MergeIntegration computes the new line config from the stored config,
// the caller input and the provider resolution (nil when unresolved).
//
// Precedence per key, highest first:
//
//	channelSecret, channelAccessToken  caller
//	botBasicId, displayName            resolved, caller, stored
//	pictureUrl, basicId                resolved, stored
//	anything else                      stored
//
// Empty strings never overwrite. The stored config is not modified.
func MergeIntegration(current LineConfig, in IntegrationInput, resolved *BotInfo) LineConfig {
	merged := current.Clone()

	merged[KeyChannelSecret] = in.ChannelSecret
	merged[KeyChannelAccessToken] = in.ChannelAccessToken

	var r BotInfo
	if resolved != nil {
		r = *resolved
	}

	setFirst(merged, KeyBotID, r.BotID, in.BotID)
	setFirst(merged, KeyDisplayName, r.DisplayName, in.DisplayName)
	setFirst(merged, KeyPictureURL, r.PictureURL)
	setFirst(merged, KeyBasicID, r.BasicID)

	return merged
}

// setFirst stores the first non-empty candidate under key, leaving the
// existing value alone when every candidate is empty.
func setFirst(cfg LineConfig, key string, candidates ...string) {
	for _, v := range candidates {
		if v != "" {
			cfg[key] = v
			return
		}
	}
}

package shop

import (
	"strings"
	"unicode/utf8"

	"github.com/mia/data-service/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// TierFree is assigned to every shop at creation unless a tier is given
const TierFree = "free"

// Field limits
const (
	maxNameLength     = 200
	maxOwnerUIDLength = 128
	maxTierLength     = 50
)

// Shop is a merchant storefront record together with its messaging
// channel integration settings.
type Shop struct {
	shared.BaseEntity
	OwnerUID   string
	Name       string
	Tier       string
	LineConfig LineConfig
	AISettings JSONMap
}

// NewShop creates a new shop with a generated ID. An empty tier falls back to TierFree.
// Names are stored in NFC so the length limit counts composed characters.
func NewShop(name, ownerUID, tier string) (*Shop, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	ownerUID = strings.TrimSpace(ownerUID)
	tier = strings.TrimSpace(tier)

	if name == "" {
		return nil, shared.NewValidationError("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, shared.NewValidationError("name must be at most 200 characters")
	}
	if ownerUID == "" {
		return nil, shared.NewValidationError("owner_uid is required")
	}
	if len(ownerUID) > maxOwnerUIDLength {
		return nil, shared.NewValidationError("owner_uid must be at most 128 characters")
	}
	if tier == "" {
		tier = TierFree
	}
	tier, err := NormalizeTier(tier)
	if err != nil {
		return nil, err
	}

	return &Shop{
		BaseEntity: shared.NewBaseEntity(),
		OwnerUID:   ownerUID,
		Name:       name,
		Tier:       tier,
	}, nil
}

// SetTier changes the service tier label
func (s *Shop) SetTier(tier string) error {
	tier, err := NormalizeTier(tier)
	if err != nil {
		return err
	}
	s.Tier = tier
	s.Touch()
	return nil
}

// ApplyIntegration merges new channel credentials and any resolved bot
// metadata into the stored line config.
func (s *Shop) ApplyIntegration(in IntegrationInput, resolved *BotInfo) {
	s.LineConfig = MergeIntegration(s.LineConfig, in, resolved)
	s.Touch()
}

// PublicURL derives the customer-facing link for the shop
func (s *Shop) PublicURL(baseURL string) string {
	return PublicURL(baseURL, s.ID)
}

// PublicURL joins a site base URL and a shop ID with a single slash
func PublicURL(baseURL, shopID string) string {
	return strings.TrimRight(baseURL, "/") + "/" + shopID
}

// NormalizeTier trims a tier label and checks it is non-blank and within length
func NormalizeTier(tier string) (string, error) {
	tier = strings.TrimSpace(tier)
	if tier == "" {
		return "", shared.NewValidationError("tier is required")
	}
	if utf8.RuneCountInString(tier) > maxTierLength {
		return "", shared.NewValidationError("tier must be at most 50 characters")
	}
	return tier, nil
}

package shop

import (
	"database/sql/driver"
)

// Keys persisted in a shop's line config
const (
	KeyChannelSecret      = "channelSecret"
	KeyChannelAccessToken = "channelAccessToken"
	KeyBotID              = "botBasicId"
	KeyDisplayName        = "displayName"
	KeyPictureURL         = "pictureUrl"
	KeyBasicID            = "basicId"
)

// LineConfig holds LINE channel credentials and resolved bot metadata.
// It is partial: keys accumulate from callers, the provider and prior
// state, and unknown keys are kept as-is.
type LineConfig map[string]any

// Value implements driver.Valuer for GORM to write to JSONB
func (c LineConfig) Value() (driver.Value, error) {
	return jsonColumnValue(c)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (c *LineConfig) Scan(value any) error {
	raw, err := scanJSONColumn(value)
	if err != nil || raw == nil {
		*c = nil
		return err
	}
	out, err := decodeJSONObject(raw)
	if err != nil {
		return err
	}
	*c = LineConfig(out)
	return nil
}

// String returns the value under key when it is a non-empty string
func (c LineConfig) String(key string) (string, bool) {
	v, ok := c[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Clone returns a shallow copy. A nil config clones to an empty one.
func (c LineConfig) Clone() LineConfig {
	out := make(LineConfig, len(c)+6)
	for k, v := range c {
		out[k] = v
	}
	return out
}

package shop

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia/data-service/internal/domain/shared"
)

func TestNewShop(t *testing.T) {
	t.Run("creates shop with default tier", func(t *testing.T) {
		s, err := NewShop("Coffee Stand", "owner-1", "")

		require.NoError(t, err)
		assert.Equal(t, "Coffee Stand", s.Name)
		assert.Equal(t, "owner-1", s.OwnerUID)
		assert.Equal(t, TierFree, s.Tier)
		assert.Nil(t, s.LineConfig)
		_, err = uuid.Parse(s.ID)
		assert.NoError(t, err)
		assert.Equal(t, s.CreatedAt, s.UpdatedAt)
	})

	t.Run("keeps explicit tier", func(t *testing.T) {
		s, err := NewShop("Coffee Stand", "owner-1", "pro")

		require.NoError(t, err)
		assert.Equal(t, "pro", s.Tier)
	})

	t.Run("composes decomposed names before measuring", func(t *testing.T) {
		s, err := NewShop(strings.Repeat("e\u0301", 200), "owner-1", "")

		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("\u00e9", 200), s.Name)
	})

	t.Run("generates unique ids", func(t *testing.T) {
		a, _ := NewShop("A", "owner-1", "")
		b, _ := NewShop("B", "owner-1", "")
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := map[string][2]string{
			"name is required":      {" ", "owner"},
			"owner_uid is required": {"Shop", ""},
			"name must be at most":  {strings.Repeat("x", 201), "owner"},
		}
		for msg, args := range cases {
			s, err := NewShop(args[0], args[1], "")
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), msg)
			assert.True(t, errors.Is(err, shared.ErrValidation))
		}
	})
}

func TestShop_SetTier(t *testing.T) {
	s, err := NewShop("Shop", "owner", "")
	require.NoError(t, err)

	restore := shared.Now
	defer func() { shared.Now = restore }()
	later := s.UpdatedAt.Add(time.Hour)
	shared.Now = func() time.Time { return later }

	require.NoError(t, s.SetTier("enterprise"))
	assert.Equal(t, "enterprise", s.Tier)
	assert.Equal(t, later, s.UpdatedAt)

	err = s.SetTier("")
	assert.Error(t, err)
	assert.Equal(t, "enterprise", s.Tier)
}

func TestShop_ApplyIntegration(t *testing.T) {
	s, err := NewShop("Shop", "owner", "")
	require.NoError(t, err)
	s.LineConfig = LineConfig{KeyBasicID: "@keep"}
	created := s.UpdatedAt

	restore := shared.Now
	defer func() { shared.Now = restore }()
	shared.Now = func() time.Time { return created.Add(time.Minute) }

	s.ApplyIntegration(IntegrationInput{ChannelSecret: "s", ChannelAccessToken: "t"}, nil)

	assert.Equal(t, "@keep", s.LineConfig[KeyBasicID])
	assert.Equal(t, "s", s.LineConfig[KeyChannelSecret])
	assert.True(t, s.UpdatedAt.After(created))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://mia.example.com/shop/abc", PublicURL("https://mia.example.com/shop", "abc"))
	assert.Equal(t, "https://mia.example.com/shop/abc", PublicURL("https://mia.example.com/shop/", "abc"))

	s := &Shop{BaseEntity: shared.BaseEntity{ID: "id-1"}}
	assert.Equal(t, "http://localhost:3000/id-1", s.PublicURL("http://localhost:3000"))
}

func TestLineConfig_ValueScan(t *testing.T) {
	t.Run("nil config is stored as NULL", func(t *testing.T) {
		v, err := LineConfig(nil).Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("round trips through JSON", func(t *testing.T) {
		in := LineConfig{KeyChannelSecret: "s", "nested": map[string]any{"a": "b"}}
		v, err := in.Value()
		require.NoError(t, err)

		var out LineConfig
		require.NoError(t, out.Scan([]byte(v.(string))))
		assert.Equal(t, "s", out[KeyChannelSecret])
		assert.Equal(t, map[string]any{"a": "b"}, out["nested"])
	})

	t.Run("scans NULL and empty values to nil", func(t *testing.T) {
		for _, raw := range []any{nil, []byte{}, "", "null"} {
			out := LineConfig{"stale": true}
			require.NoError(t, out.Scan(raw))
			assert.Nil(t, out)
		}
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var out LineConfig
		assert.Error(t, out.Scan(42))
	})

	t.Run("rejects scalar JSON", func(t *testing.T) {
		var out JSONMap
		assert.Error(t, out.Scan(`"just a string"`))
	})
}

func TestLineConfig_String(t *testing.T) {
	cfg := LineConfig{KeyBotID: "U1", KeyDisplayName: "", "n": 3}

	v, ok := cfg.String(KeyBotID)
	assert.True(t, ok)
	assert.Equal(t, "U1", v)

	_, ok = cfg.String(KeyDisplayName)
	assert.False(t, ok)
	_, ok = cfg.String("n")
	assert.False(t, ok)
	_, ok = LineConfig(nil).String(KeyBotID)
	assert.False(t, ok)
}

func TestNewSite(t *testing.T) {
	site, err := NewSite("shop-1", nil)
	require.NoError(t, err)
	assert.Equal(t, SiteStatusDraft, site.Status)
	assert.NotNil(t, site.ConfigJSON)
	assert.Nil(t, site.Slug)

	_, err = NewSite("", nil)
	assert.Error(t, err)
}

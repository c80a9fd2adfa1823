package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExactName(t *testing.T) {
	b := NewBase()

	profile := b.Lookup("Legiit Leads")

	assert.Equal(t, "Legiit Leads", profile.ProductKey)
	assert.Contains(t, profile.DescriptionText, "prospects")
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	b := NewBase()

	upper := b.Lookup("LEGIIT MARKETPLACE")
	lower := b.Lookup("legiit marketplace")

	require.Equal(t, "Legiit Marketplace", upper.ProductKey)
	assert.Equal(t, upper, lower)
}

func TestLookupNormalizesWhitespace(t *testing.T) {
	b := NewBase()

	profile := b.Lookup("  Legiit   Dashboard ")

	assert.Equal(t, "Legiit Dashboard", profile.ProductKey)
}

func TestLookupAliases(t *testing.T) {
	b := NewBase()

	cases := map[string]string{
		"marketplace": "Legiit Marketplace",
		"dashboard":   "Legiit Dashboard",
		"leads":       "Legiit Leads",
		"audiit":      "Audiit.io",
		"signal":      "Brand Signal",
	}

	for alias, want := range cases {
		profile := b.Lookup(alias)
		assert.Equal(t, want, profile.ProductKey, "alias %q", alias)
	}
}

func TestLookupUnknownProductFallsBack(t *testing.T) {
	b := NewBase()

	profile := b.Lookup("Mystery Product")

	assert.Equal(t, "Mystery Product", profile.ProductKey)
	assert.Contains(t, profile.DescriptionText, "Mystery Product")
	assert.Contains(t, profile.DescriptionText, "Legiit product")
}

func TestCatalogCoversAllKnownProducts(t *testing.T) {
	b := NewBase()

	for _, key := range []string{
		"Legiit Marketplace",
		"Legiit Dashboard",
		"Legiit Leads",
		"Audiit.io",
		"Brand Signal",
	} {
		profile := b.Lookup(key)
		require.Equal(t, key, profile.ProductKey)
		// Every catalog entry carries real description text, not the
		// generic fallback.
		assert.False(t, strings.Contains(profile.DescriptionText, "fraction of hiring an agency"),
			"catalog entry %q should not use the fallback description", key)
		assert.Greater(t, len(profile.DescriptionText), 100)
	}
}

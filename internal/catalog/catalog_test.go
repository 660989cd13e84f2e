package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subscope-dev/subscope/internal/model"
)

func TestMatch_DirectPrefix(t *testing.T) {
	p, ok := Match("NETFLIX.COM 866-579-7172")
	require.True(t, ok)
	assert.Equal(t, "Netflix", p.DisplayName)
	assert.Equal(t, model.CategoryEntertainment, p.Category)
	assert.True(t, p.IsSubscription)
}

func TestMatch_Substring(t *testing.T) {
	p, ok := Match("POS PURCHASE SPOTIFY P2E4A8")
	require.True(t, ok)
	assert.Equal(t, "Spotify", p.DisplayName)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	p, ok := Match("netflix.com")
	require.True(t, ok)
	assert.Equal(t, "Netflix", p.DisplayName)
}

func TestMatch_ProcessorWinsOverWrappedVendor(t *testing.T) {
	// A PayPal-wrapped Netflix charge must hit the processor entry, not the
	// Netflix entry, so the resolver can extract the wrapped vendor.
	p, ok := Match("PAYPAL *NETFLIX")
	require.True(t, ok)
	assert.True(t, p.ExtractVendor)
}

func TestMatch_Unknown(t *testing.T) {
	_, ok := Match("SOME CORNER STORE 1234")
	assert.False(t, ok)

	_, ok = Match("")
	assert.False(t, ok)
}

func TestExtractVendor(t *testing.T) {
	p, ok := Match("PAYPAL *ACME WIDGETS INC")
	require.True(t, ok)
	require.True(t, p.ExtractVendor)

	got := ExtractVendor("PAYPAL *ACME WIDGETS INC", p)
	assert.Equal(t, "ACME WIDGETS", got)
}

func TestExtractVendor_NestedKnownVendor(t *testing.T) {
	p, ok := Match("PAYPAL *SPOTIFY AB")
	require.True(t, ok)

	vendor := ExtractVendor("PAYPAL *SPOTIFY AB", p)
	nested, ok := Match(vendor)
	require.True(t, ok)
	assert.Equal(t, "Spotify", nested.DisplayName)
}

func TestExtractVendor_NothingAfterPrefix(t *testing.T) {
	p, ok := Match("PAYPAL")
	require.True(t, ok)
	assert.Equal(t, "", ExtractVendor("PAYPAL", p))
}

func TestExtractVendor_StripsMultipleSuffixes(t *testing.T) {
	p, _ := Match("PAYPAL *BREX HOLDINGS CO LLC")
	got := ExtractVendor("PAYPAL *BREX HOLDINGS CO LLC", p)
	assert.Equal(t, "BREX HOLDINGS", got)
}

func TestTableOrder_ProcessorsFirst(t *testing.T) {
	// Declaration order is a contract: every ExtractVendor entry precedes
	// every direct merchant entry.
	lastProcessor, firstDirect := -1, -1
	for i, p := range patterns {
		if p.ExtractVendor {
			lastProcessor = i
		} else if firstDirect == -1 {
			firstDirect = i
		}
	}
	require.NotEqual(t, -1, firstDirect)
	assert.Less(t, lastProcessor, firstDirect)
}

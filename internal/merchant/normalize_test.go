package merchant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NETFLIX.COM 866-579-7172", "NETFLIX COM 866 579 7172"},
		{"netflix.com", "NETFLIX COM"},
		{"  SQ *COFFEE--BAR  ", "SQ COFFEE BAR"},
		{"PAYPAL *SPOTIFY", "PAYPAL SPOTIFY"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CacheKey(tt.in), "input %q", tt.in)
	}
}

func TestCacheKey_TruncatesTrailingVariation(t *testing.T) {
	base := strings.Repeat("VENDOR NAME ", 6) // 72 chars
	a := CacheKey(base + "REF 000123")
	b := CacheKey(base + "REF 000456")
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, len(a), maxKeyLen)
}

func TestStripTrailingJunk(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ZIPCAR 12345 TORONTO 2024-01-05", "ZIPCAR 12345 TORONTO"},
		{"ACME WIDGETS #4421", "ACME WIDGETS"},
		{"NETFLIX.COM 866-579-7172", "NETFLIX.COM"},
		{"PLAIN MERCHANT", "PLAIN MERCHANT"},
		{"REF99887766", "REF99887766"}, // never strip the last word
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripTrailingJunk(tt.in), "input %q", tt.in)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Acme Widgets", TitleCase("ACME WIDGETS"))
	assert.Equal(t, "Corner Store", TitleCase("corner store"))
	assert.Equal(t, "", TitleCase(""))
}

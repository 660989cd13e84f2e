package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type merchantItem struct {
	Original string  `json:"original"`
	Vendor   string  `json:"vendor"`
	Category string  `json:"category"`
	Conf     float64 `json:"confidence"`
}

func TestExtractArray_Direct(t *testing.T) {
	items, ok := ExtractArray(`[{"original":"NETFLIX","vendor":"Netflix"}]`)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestExtractArray_CodeFence(t *testing.T) {
	text := "Here are the results:\n```json\n[{\"original\":\"NETFLIX\",\"vendor\":\"Netflix\"}]\n```\nLet me know if you need more."
	items, ok := ExtractArray(text)
	require.True(t, ok)
	require.Len(t, items, 1)

	var m merchantItem
	require.NoError(t, json.Unmarshal(items[0], &m))
	assert.Equal(t, "Netflix", m.Vendor)
}

func TestExtractArray_EmbeddedInProse(t *testing.T) {
	text := `Sure! Based on the descriptions, [{"original":"SPOTIFY","vendor":"Spotify"},{"original":"HULU","vendor":"Hulu"}] covers all of them.`
	items, ok := ExtractArray(text)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestExtractArray_BracketsInsideStrings(t *testing.T) {
	text := `[{"original":"ACME [POS]","vendor":"Acme"}]`
	items, ok := ExtractArray(text)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestExtractArray_SalvagesTruncated(t *testing.T) {
	// Truncated mid-array: the complete leading object must survive.
	text := `[{"original":"NETFLIX","vendor":"Netflix","category":"entertainment","confidence":0.9},{"original":"SPOT`
	items, ok := ExtractArray(text)
	require.True(t, ok)
	require.Len(t, items, 1)

	var m merchantItem
	require.NoError(t, json.Unmarshal(items[0], &m))
	assert.Equal(t, "Netflix", m.Vendor)
	assert.Equal(t, "entertainment", m.Category)
	assert.InDelta(t, 0.9, m.Conf, 1e-9)
}

func TestExtractArray_SalvagesMultipleFragments(t *testing.T) {
	text := `{"vendor":"Netflix","importance":2} garbage {"vendor":"Hydro One","importance":5} trailing {"broken":`
	items, ok := ExtractArray(text)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestExtractArray_Nothing(t *testing.T) {
	_, ok := ExtractArray("I could not process that request.")
	assert.False(t, ok)

	_, ok = ExtractArray("")
	assert.False(t, ok)
}

func TestBuildMerchantPrompt_ContainsInputs(t *testing.T) {
	p := BuildMerchantPrompt([]string{"NETFLIX.COM", "SQ *COFFEE BAR"})
	assert.Contains(t, p, "NETFLIX.COM")
	assert.Contains(t, p, "SQ *COFFEE BAR")
	assert.Contains(t, p, "is_subscription")
}

func TestBuildRankingPrompt_ContainsRubric(t *testing.T) {
	p := BuildRankingPrompt([]SubscriptionSummary{
		{Vendor: "Netflix", Amount: "15.99", Frequency: "monthly", AnnualCost: "191.88"},
	})
	assert.Contains(t, p, "consider canceling")
	assert.Contains(t, p, "Netflix")
}

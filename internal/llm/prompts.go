package llm

import (
	"encoding/json"
	"strings"
)

// MerchantSystem is the system instruction for merchant resolution calls.
const MerchantSystem = `You are a financial transaction analyst. You turn raw bank statement descriptions into clean merchant names and categories. You always respond with a JSON array and nothing else.`

// RankingSystem is the system instruction for importance ranking calls.
const RankingSystem = `You are a personal finance advisor helping a user decide which recurring charges to keep and which to cancel. You always respond with a JSON array and nothing else.`

// merchantCategories is the closed category list offered to the model.
var merchantCategories = []string{
	"entertainment", "gaming", "news", "productivity", "health", "education",
	"utilities", "insurance", "shopping", "food", "travel", "finance", "other",
}

// BuildMerchantPrompt asks the model to resolve one batch of raw
// descriptions.
func BuildMerchantPrompt(descriptions []string) string {
	var b strings.Builder
	b.WriteString("Resolve each bank statement description below to a clean merchant name.\n\n")
	b.WriteString("**Rules:**\n")
	b.WriteString("- \"vendor\" is the human-readable merchant name (e.g. \"NETFLIX.COM 866-579\" -> \"Netflix\")\n")
	b.WriteString("- \"category\" is one of: " + strings.Join(merchantCategories, ", ") + "\n")
	b.WriteString("- \"is_subscription\" is true only for services that charge on a recurring schedule\n")
	b.WriteString("- \"confidence\" is your certainty in [0,1]\n")
	b.WriteString("- Return exactly one object per input, with \"original\" echoing the input verbatim\n\n")
	b.WriteString("**Output format:** a JSON array, no prose:\n")
	b.WriteString(`[{"original":"...","vendor":"...","category":"...","is_subscription":false,"confidence":0.9}]`)
	b.WriteString("\n\n**Descriptions:**\n")

	data, _ := json.MarshalIndent(descriptions, "", "  ")
	b.Write(data)
	return b.String()
}

// SubscriptionSummary is the compact per-candidate payload sent for ranking.
type SubscriptionSummary struct {
	Vendor     string `json:"vendor"`
	Amount     string `json:"amount"`
	Frequency  string `json:"frequency"`
	Category   string `json:"category,omitempty"`
	AnnualCost string `json:"annual_cost"`
}

// BuildRankingPrompt asks the model to score each candidate 1-5 under the
// cancellation rubric.
func BuildRankingPrompt(summaries []SubscriptionSummary) string {
	var b strings.Builder
	b.WriteString("Score each recurring charge below by importance to the user.\n\n")
	b.WriteString("**Rubric:**\n")
	b.WriteString("- 5 = essential (utilities, insurance, critical tools)\n")
	b.WriteString("- 4 = very important (professional productivity)\n")
	b.WriteString("- 3 = moderate\n")
	b.WriteString("- 2 = low priority\n")
	b.WriteString("- 1 = consider canceling\n\n")
	b.WriteString("**Rules:**\n")
	b.WriteString("- \"vendor\" echoes the input vendor\n")
	b.WriteString("- \"reason\" is one sentence\n")
	b.WriteString("- \"cancel_recommendation\" is an optional short suggestion, empty if none\n\n")
	b.WriteString("**Output format:** a JSON array, no prose:\n")
	b.WriteString(`[{"vendor":"...","importance":3,"reason":"...","cancel_recommendation":""}]`)
	b.WriteString("\n\n**Recurring charges:**\n")

	data, _ := json.MarshalIndent(summaries, "", "  ")
	b.Write(data)
	return b.String()
}

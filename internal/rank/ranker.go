package rank

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/subscope-dev/subscope/internal/llm"
	"github.com/subscope-dev/subscope/internal/model"
	"github.com/subscope-dev/subscope/internal/store"
)

// Ranker assigns a 1-5 importance to each detected subscription. User
// overrides win outright; everything else goes through one batched
// classifier call with category defaults as the fallback.
type Ranker struct {
	store      store.Store
	classifier llm.Classifier // nil means classifier not configured
	log        zerolog.Logger
}

// NewRanker creates a Ranker.
func NewRanker(st store.Store, classifier llm.Classifier, log zerolog.Logger) *Ranker {
	return &Ranker{store: st, classifier: classifier, log: log}
}

// aiRank is the per-candidate schema the classifier is asked to return.
type aiRank struct {
	Vendor               string `json:"vendor"`
	Importance           int    `json:"importance"`
	Reason               string `json:"reason"`
	CancelRecommendation string `json:"cancel_recommendation"`
}

// Rank scores every subscription and returns them in input order. The bool
// reports degraded ranking: the classifier was unavailable or skipped some
// candidates, and those fell back to category defaults.
func (r *Ranker) Rank(ctx context.Context, subs []model.DetectedSubscription) ([]model.RankedSubscription, bool) {
	ranked := make([]model.RankedSubscription, len(subs))
	var unranked []int

	for i, sub := range subs {
		ranked[i] = model.RankedSubscription{DetectedSubscription: sub}

		o, ok, err := r.store.GetOverride(sub.ID)
		if err != nil {
			r.log.Warn().Err(err).Str("id", sub.ID).Msg("override read failed")
		}
		if ok {
			ranked[i].Importance = clamp(o.Importance)
			ranked[i].IsUserOverride = true
			ranked[i].AIReason = o.UserNote
			continue
		}
		unranked = append(unranked, i)
	}

	if len(unranked) == 0 {
		return ranked, false
	}

	items, degraded := r.classify(ctx, ranked, unranked)
	for _, i := range unranked {
		item, ok := matchVendor(items, ranked[i])
		if !ok {
			ranked[i].Importance = model.DefaultImportance(ranked[i].Category)
			degraded = true
			continue
		}
		ranked[i].Importance = clamp(item.Importance)
		ranked[i].AIReason = item.Reason
		ranked[i].CancelRecommendation = item.CancelRecommendation
	}
	return ranked, degraded
}

// SetOverride records a permanent user importance override.
func (r *Ranker) SetOverride(o model.RankingOverride) error {
	o.Importance = clamp(o.Importance)
	return r.store.PutOverride(o)
}

// ClearOverride removes an override, returning the subscription to
// automatic ranking on the next run.
func (r *Ranker) ClearOverride(subscriptionID string) error {
	return r.store.DeleteOverride(subscriptionID)
}

// classify issues the single batched ranking call and parses what came
// back. A nil or failing classifier returns no items and degraded=true.
func (r *Ranker) classify(ctx context.Context, ranked []model.RankedSubscription, unranked []int) ([]aiRank, bool) {
	if r.classifier == nil {
		return nil, true
	}

	summaries := make([]llm.SubscriptionSummary, 0, len(unranked))
	for _, i := range unranked {
		s := ranked[i]
		summaries = append(summaries, llm.SubscriptionSummary{
			Vendor:     s.DisplayName,
			Amount:     s.Amount.StringFixed(2),
			Frequency:  string(s.Frequency),
			Category:   s.Category,
			AnnualCost: s.AnnualCost.StringFixed(2),
		})
	}

	response, err := r.classifier.Complete(ctx, llm.RankingSystem, llm.BuildRankingPrompt(summaries))
	if err != nil {
		r.log.Warn().Err(err).Int("candidates", len(unranked)).Msg("ranking classifier call failed")
		return nil, true
	}

	raws, ok := llm.ExtractArray(response)
	if !ok {
		r.log.Warn().Msg("no JSON array in ranking response")
		return nil, true
	}

	items := make([]aiRank, 0, len(raws))
	for _, raw := range raws {
		var item aiRank
		if err := json.Unmarshal(raw, &item); err != nil || item.Vendor == "" {
			continue
		}
		items = append(items, item)
	}
	return items, false
}

// matchVendor finds the returned item for one candidate. The classifier
// sometimes echoes a shortened or embellished vendor name, so exact match
// is tried first and substring containment second, against both the display
// name and the raw merchant text.
func matchVendor(items []aiRank, sub model.RankedSubscription) (aiRank, bool) {
	display := strings.ToLower(sub.DisplayName)
	merchant := strings.ToLower(sub.MerchantName)

	for _, item := range items {
		if strings.ToLower(item.Vendor) == display {
			return item, true
		}
	}
	for _, item := range items {
		v := strings.ToLower(item.Vendor)
		if v == "" {
			continue
		}
		if strings.Contains(display, v) || strings.Contains(v, display) ||
			strings.Contains(merchant, v) || strings.Contains(v, merchant) {
			return item, true
		}
	}
	return aiRank{}, false
}

func clamp(importance int) int {
	if importance < 1 {
		return 1
	}
	if importance > 5 {
		return 5
	}
	return importance
}

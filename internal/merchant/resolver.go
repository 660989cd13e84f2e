package merchant

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/subscope-dev/subscope/internal/catalog"
	"github.com/subscope-dev/subscope/internal/llm"
	"github.com/subscope-dev/subscope/internal/model"
	"github.com/subscope-dev/subscope/internal/store"
)

// Confidence values per resolution path.
const (
	cacheConfidence     = 0.95
	patternConfidence   = 0.90
	extractedConfidence = 0.70
	fallbackConfidence  = 0.50
)

// DefaultBatchSize bounds classifier request payloads, not parallelism.
const DefaultBatchSize = 15

// Resolver turns raw statement descriptions into clean vendor identities
// using, in order, the persistent cache, the pattern catalog, and batched
// classifier calls.
type Resolver struct {
	store      store.Store
	classifier llm.Classifier // nil means classifier not configured
	guesser    *CategoryGuesser
	batchSize  int
	log        zerolog.Logger
	now        func() time.Time
}

// NewResolver creates a Resolver. A batchSize <= 0 uses DefaultBatchSize;
// a nil classifier sends every unknown merchant down the local fallback.
func NewResolver(st store.Store, classifier llm.Classifier, batchSize int, log zerolog.Logger) *Resolver {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Resolver{
		store:      st,
		classifier: classifier,
		guesser:    NewCategoryGuesser(),
		batchSize:  batchSize,
		log:        log,
		now:        time.Now,
	}
}

// Resolve is the single-description convenience wrapper around ResolveMany.
func (r *Resolver) Resolve(ctx context.Context, description string) (model.ResolvedMerchant, bool) {
	results, degraded := r.ResolveMany(ctx, []string{description})
	return results[description], degraded
}

// ResolveMany resolves every unique description and returns results keyed by
// the original description text. The bool reports degraded mode: one or more
// classifier calls failed and their merchants fell back to local heuristics.
// Batches are issued sequentially so cache writes from one batch are visible
// to the next.
func (r *Resolver) ResolveMany(ctx context.Context, descriptions []string) (map[string]model.ResolvedMerchant, bool) {
	results := make(map[string]model.ResolvedMerchant, len(descriptions))
	var unresolved []string
	seen := make(map[string]bool, len(descriptions))

	for _, desc := range descriptions {
		if desc == "" || seen[desc] {
			continue
		}
		seen[desc] = true

		if m, ok := r.fromCache(desc); ok {
			results[desc] = m
			continue
		}
		if m, ok := r.fromCatalog(desc); ok {
			results[desc] = m
			continue
		}
		unresolved = append(unresolved, desc)
	}

	degraded := false
	for start := 0; start < len(unresolved); start += r.batchSize {
		end := start + r.batchSize
		if end > len(unresolved) {
			end = len(unresolved)
		}
		if r.resolveBatch(ctx, unresolved[start:end], results) {
			degraded = true
		}
	}
	return results, degraded
}

// CorrectMerchantName records a user correction. User entries are permanent
// ground truth: automatic resolution never overwrites them.
func (r *Resolver) CorrectMerchantName(original, vendor, category string, isSubscription bool) error {
	return r.store.PutMerchant(CacheKey(original), model.CacheEntry{
		Vendor:         vendor,
		Source:         model.SourceUser,
		Category:       category,
		IsSubscription: isSubscription,
		LastSeen:       r.now(),
		HitCount:       1,
	})
}

func (r *Resolver) fromCache(desc string) (model.ResolvedMerchant, bool) {
	key := CacheKey(desc)
	entry, ok, err := r.store.GetMerchant(key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("merchant cache read failed")
		return model.ResolvedMerchant{}, false
	}
	if !ok {
		return model.ResolvedMerchant{}, false
	}

	entry.HitCount++
	entry.LastSeen = r.now()
	if err := r.store.PutMerchant(key, entry); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("merchant cache hit bump failed")
	}

	return model.ResolvedMerchant{
		Original:       desc,
		Vendor:         entry.Vendor,
		Category:       entry.Category,
		IsSubscription: entry.IsSubscription,
		Source:         model.SourceCache,
		Confidence:     cacheConfidence,
	}, true
}

func (r *Resolver) fromCatalog(desc string) (model.ResolvedMerchant, bool) {
	p, ok := catalog.Match(desc)
	if !ok {
		return model.ResolvedMerchant{}, false
	}

	m := model.ResolvedMerchant{
		Original:   desc,
		Source:     model.SourcePattern,
		Confidence: patternConfidence,
	}
	if p.ExtractVendor {
		extracted := catalog.ExtractVendor(desc, p)
		if extracted == "" {
			return model.ResolvedMerchant{}, false
		}
		// Processor-wrapped charges may still be known vendors.
		if nested, ok := catalog.Match(extracted); ok && !nested.ExtractVendor {
			m.Vendor = nested.DisplayName
			m.Category = nested.Category
			m.IsSubscription = nested.IsSubscription
		} else {
			m.Vendor = TitleCase(extracted)
			m.Confidence = extractedConfidence
		}
	} else {
		m.Vendor = p.DisplayName
		m.Category = p.Category
		m.IsSubscription = p.IsSubscription
	}

	r.cache(desc, m, model.SourcePattern)
	return m, true
}

// aiItem is the per-description schema the classifier is asked to return.
type aiItem struct {
	Original       string  `json:"original"`
	Vendor         string  `json:"vendor"`
	Category       string  `json:"category"`
	IsSubscription bool    `json:"is_subscription"`
	Confidence     float64 `json:"confidence"`
}

// resolveBatch issues one classifier call for a batch and fills results,
// falling back locally for anything the call failed to cover. Returns true
// when the batch was degraded.
func (r *Resolver) resolveBatch(ctx context.Context, batch []string, results map[string]model.ResolvedMerchant) bool {
	// Cache writes from earlier batches may already cover near-duplicate
	// descriptions that normalize to the same key.
	remaining := batch[:0:0]
	for _, desc := range batch {
		if m, ok := r.fromCache(desc); ok {
			results[desc] = m
			continue
		}
		remaining = append(remaining, desc)
	}
	batch = remaining
	if len(batch) == 0 {
		return false
	}

	if r.classifier == nil {
		for _, desc := range batch {
			results[desc] = r.fallbackResolve(desc)
		}
		return len(batch) > 0
	}

	response, err := r.classifier.Complete(ctx, llm.MerchantSystem, llm.BuildMerchantPrompt(batch))
	if err != nil {
		r.log.Warn().Err(err).Int("batch_size", len(batch)).Msg("merchant classifier call failed")
		for _, desc := range batch {
			results[desc] = r.fallbackResolve(desc)
		}
		return true
	}

	items, ok := llm.ExtractArray(response)
	if !ok {
		r.log.Warn().Int("batch_size", len(batch)).Msg("no JSON array in classifier response")
		for _, desc := range batch {
			results[desc] = r.fallbackResolve(desc)
		}
		return true
	}

	byOriginal := make(map[string]aiItem, len(items))
	for _, raw := range items {
		var item aiItem
		if err := json.Unmarshal(raw, &item); err != nil || item.Vendor == "" {
			continue
		}
		byOriginal[CacheKey(item.Original)] = item
	}

	degraded := false
	for _, desc := range batch {
		item, ok := byOriginal[CacheKey(desc)]
		if !ok {
			results[desc] = r.fallbackResolve(desc)
			degraded = true
			continue
		}
		m := model.ResolvedMerchant{
			Original:       desc,
			Vendor:         item.Vendor,
			Category:       strings.ToLower(item.Category),
			IsSubscription: item.IsSubscription,
			Source:         model.SourceAI,
			Confidence:     item.Confidence,
		}
		r.cache(desc, m, model.SourceAI)
		results[desc] = m
	}
	return degraded
}

// fallbackResolve is the last resort: strip trailing reference junk and
// title-case what remains. Not cached, so a later run with a working
// classifier can do better.
func (r *Resolver) fallbackResolve(desc string) model.ResolvedMerchant {
	m := model.ResolvedMerchant{
		Original:   desc,
		Vendor:     TitleCase(StripTrailingJunk(desc)),
		Source:     model.SourcePattern,
		Confidence: fallbackConfidence,
	}
	if category, _ := r.guesser.Guess(desc); category != "" {
		m.Category = category
	}
	return m
}

// cache writes a successful resolution back, refusing to clobber a
// user-authored entry.
func (r *Resolver) cache(desc string, m model.ResolvedMerchant, source model.Source) {
	key := CacheKey(desc)
	if existing, ok, err := r.store.GetMerchant(key); err == nil && ok && existing.Source == model.SourceUser {
		return
	}
	err := r.store.PutMerchant(key, model.CacheEntry{
		Vendor:         m.Vendor,
		Source:         source,
		Category:       m.Category,
		IsSubscription: m.IsSubscription,
		LastSeen:       r.now(),
		HitCount:       1,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("merchant cache write failed")
	}
}

package detect

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/subscope-dev/subscope/internal/classify"
	"github.com/subscope-dev/subscope/internal/id"
	"github.com/subscope-dev/subscope/internal/merchant"
	"github.com/subscope-dev/subscope/internal/model"
)

// Detection thresholds. Known subscription services get benefit of the doubt
// on amount wobble and weak date signal.
const (
	minGroupSize        = 2
	consistencyCutoff   = 0.80
	knownServiceFloor   = 0.75
	undeterminedDateCnf = 0.50
)

// Detector finds recurring charge patterns in a closed batch of
// transactions. MinOccurrences and ConsistencyCutoff may be adjusted before
// the first Detect call.
type Detector struct {
	MinOccurrences    int
	ConsistencyCutoff float64

	resolver *merchant.Resolver
	log      zerolog.Logger
}

// NewDetector creates a Detector with default thresholds.
func NewDetector(resolver *merchant.Resolver, log zerolog.Logger) *Detector {
	return &Detector{
		MinOccurrences:    minGroupSize,
		ConsistencyCutoff: consistencyCutoff,
		resolver:          resolver,
		log:               log,
	}
}

type group struct {
	vendor   string
	resolved model.ResolvedMerchant
	txns     []model.Transaction
}

// Detect runs the full pipeline over a transaction batch and returns
// candidate subscriptions sorted by annual cost descending. The bool reports
// degraded merchant resolution (classifier unavailable or partial).
func (d *Detector) Detect(ctx context.Context, transactions []model.Transaction) ([]model.DetectedSubscription, bool) {
	var kept []model.Transaction
	for _, t := range transactions {
		if !t.Valid() {
			continue
		}
		// Recurring money movement is not discretionary spend.
		if classify.IsExcluded(t.Description) {
			continue
		}
		kept = append(kept, t)
	}

	descriptions := make([]string, 0, len(kept))
	for _, t := range kept {
		descriptions = append(descriptions, t.Description)
	}
	resolved, degraded := d.resolver.ResolveMany(ctx, descriptions)

	groups := groupByVendor(kept, resolved)

	var subs []model.DetectedSubscription
	for _, g := range groups {
		sub, ok := d.analyze(g)
		if !ok {
			continue
		}
		// Final guard: money movement that slipped past the upstream
		// exclusion never appears in the output.
		if sub.RecurringType == model.TypeTransfer || sub.RecurringType == model.TypeInvestment {
			continue
		}
		subs = append(subs, sub)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].AnnualCost.GreaterThan(subs[j].AnnualCost)
	})
	return subs, degraded
}

func groupByVendor(txns []model.Transaction, resolved map[string]model.ResolvedMerchant) []group {
	byKey := make(map[string]*group)
	var order []string

	for _, t := range txns {
		m, ok := resolved[t.Description]
		if !ok || m.Vendor == "" {
			continue
		}
		key := strings.ToLower(m.Vendor)
		g, ok := byKey[key]
		if !ok {
			g = &group{vendor: m.Vendor, resolved: m}
			byKey[key] = g
			order = append(order, key)
		}
		// Prefer the richest resolution seen for the vendor.
		if !g.resolved.IsSubscription && m.IsSubscription {
			g.resolved.IsSubscription = true
		}
		if g.resolved.Category == "" && m.Category != "" {
			g.resolved.Category = m.Category
		}
		g.txns = append(g.txns, t)
	}

	out := make([]group, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// analyze decides whether one vendor group is a recurring charge pattern.
func (d *Detector) analyze(g group) (model.DetectedSubscription, bool) {
	if len(g.txns) < d.MinOccurrences {
		return model.DetectedSubscription{}, false
	}

	// Defensive re-check: a transfer can slip through when its vendor
	// resolution landed on a cached non-transfer name.
	if classify.IsExcluded(g.txns[0].Description) {
		return model.DetectedSubscription{}, false
	}

	sort.Slice(g.txns, func(i, j int) bool { return g.txns[i].Date.Before(g.txns[j].Date) })

	dates := make([]time.Time, len(g.txns))
	amounts := make([]float64, len(g.txns))
	sum := decimal.Zero
	for i, t := range g.txns {
		dates[i] = t.Date
		abs := t.Amount.Abs()
		amounts[i] = abs.InexactFloat64()
		sum = sum.Add(abs)
	}

	freq, dateConf, hasFreq := frequencyFromIntervals(intervals(dates))
	known := g.resolved.IsSubscription

	amountConsistency := consistency(amounts)
	if amountConsistency < d.ConsistencyCutoff && !known {
		return model.DetectedSubscription{}, false
	}

	switch {
	case hasFreq:
		// keep computed frequency
	case known:
		freq = model.Monthly
		dateConf = undeterminedDateCnf
	default:
		// No date signal and no prior: not a subscription.
		return model.DetectedSubscription{}, false
	}

	confidence := (dateConf + amountConsistency) / 2
	if known && confidence < knownServiceFloor {
		confidence = knownServiceFloor
	}

	avgAmount := sum.Div(decimal.NewFromInt(int64(len(g.txns)))).Round(2)
	last := dates[len(dates)-1]

	charges := make([]model.Charge, len(g.txns))
	for i, t := range g.txns {
		charges[i] = model.Charge{Date: t.Date, Amount: t.Amount, Description: t.Description}
	}

	return model.DetectedSubscription{
		ID:                    id.Subscription(g.vendor),
		MerchantName:          g.txns[0].Description,
		DisplayName:           g.vendor,
		Amount:                avgAmount,
		Frequency:             freq,
		Category:              g.resolved.Category,
		Importance:            model.DefaultImportance(g.resolved.Category),
		Confidence:            confidence,
		LastCharged:           last,
		NextExpected:          freq.Advance(last),
		Transactions:          charges,
		AnnualCost:            model.AnnualCost(avgAmount, freq),
		Source:                g.resolved.Source,
		IsSubscriptionService: known,
		RecurringType:         recurringType(g.resolved),
	}, true
}

// recurringType derives the coarse reason a charge recurs from the resolved
// category and the known-subscription flag.
func recurringType(m model.ResolvedMerchant) model.RecurringType {
	switch m.Category {
	case model.CategoryTransfer:
		return model.TypeTransfer
	case model.CategoryInvestment:
		return model.TypeInvestment
	case model.CategoryUtilities:
		return model.TypeBill
	case model.CategoryEntertainment, model.CategoryGaming, model.CategoryNews,
		model.CategoryProductivity, model.CategoryHealth, model.CategoryEducation:
		return model.TypeSubscription
	}
	if m.IsSubscription {
		return model.TypeSubscription
	}
	return model.TypeOther
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the inferred cadence of a recurring charge.
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// PeriodsPerYear returns how many charges a year holds at this cadence.
func (f Frequency) PeriodsPerYear() int64 {
	switch f {
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		return 12
	}
}

// Advance returns t moved forward by one period, calendar-aware for the
// month-based cadences.
func (f Frequency) Advance(t time.Time) time.Time {
	switch f {
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	case Quarterly:
		return t.AddDate(0, 3, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// AnnualCost derives the yearly cost from a per-period amount. Always derived,
// never stored independently of its inputs.
func AnnualCost(amount decimal.Decimal, f Frequency) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(f.PeriodsPerYear()))
}

// RecurringType is the coarse reason a charge recurs.
type RecurringType string

const (
	TypeSubscription RecurringType = "subscription"
	TypeBill         RecurringType = "bill"
	TypeTransfer     RecurringType = "transfer"
	TypeInvestment   RecurringType = "investment"
	TypeOther        RecurringType = "other"
)

// Charge is one historical charge attached to a detected subscription.
type Charge struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// DetectedSubscription is one recurring charge pattern found in a batch of
// transactions. Amount is the average charge magnitude (positive).
type DetectedSubscription struct {
	ID                    string
	MerchantName          string
	DisplayName           string
	Amount                decimal.Decimal
	Frequency             Frequency
	Category              string
	Importance            int // 1..5
	IsUserOverride        bool
	Confidence            float64
	LastCharged           time.Time
	NextExpected          time.Time
	Transactions          []Charge
	AnnualCost            decimal.Decimal
	Source                Source
	IsSubscriptionService bool
	RecurringType         RecurringType
}

// DefaultImportance is the deterministic 1-5 importance for a category, used
// whenever the external classifier cannot score a candidate. Ranking must be
// total over the input set.
func DefaultImportance(category string) int {
	switch category {
	case CategoryUtilities, CategoryInsurance:
		return 5
	case CategoryProductivity:
		return 4
	case CategoryEntertainment, CategoryGaming, CategoryNews:
		return 2
	default:
		return 3
	}
}

// RankedSubscription is a DetectedSubscription with ranking annotations.
type RankedSubscription struct {
	DetectedSubscription

	AIReason             string
	CancelRecommendation string
}

// RankingOverride is a user-authored importance override for one
// subscription ID. It persists indefinitely and always wins.
type RankingOverride struct {
	SubscriptionID string
	Importance     int
	UserNote       string
	UpdatedAt      time.Time
}

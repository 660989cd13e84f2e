package model

import "time"

// Source records where a merchant resolution came from. Cache precedence is
// user > ai/pattern > derived fallback.
type Source string

const (
	SourcePattern Source = "pattern"
	SourceAI      Source = "ai"
	SourceUser    Source = "user"
	SourceCache   Source = "cache"
)

// Merchant categories shared by the catalog, the classifier prompt, and the
// ranking defaults.
const (
	CategoryEntertainment = "entertainment"
	CategoryGaming        = "gaming"
	CategoryNews          = "news"
	CategoryProductivity  = "productivity"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategoryUtilities     = "utilities"
	CategoryInsurance     = "insurance"
	CategoryShopping      = "shopping"
	CategoryFood          = "food"
	CategoryTravel        = "travel"
	CategoryFinance       = "finance"
	CategoryTransfer      = "transfer"
	CategoryInvestment    = "investment"
	CategoryOther         = "other"
)

// ResolvedMerchant is the outcome of resolving one raw description.
type ResolvedMerchant struct {
	Original       string
	Vendor         string
	Category       string
	IsSubscription bool
	Source         Source
	Confidence     float64
}

// CacheEntry is the persisted form of a resolution, keyed by the normalized
// description. Entries are never auto-expired.
type CacheEntry struct {
	Vendor         string
	Source         Source
	Category       string
	IsSubscription bool
	LastSeen       time.Time
	HitCount       int
}

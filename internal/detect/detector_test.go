package detect

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subscope-dev/subscope/internal/merchant"
	"github.com/subscope-dev/subscope/internal/model"
	"github.com/subscope-dev/subscope/internal/store"
)

func newTestDetector() *Detector {
	resolver := merchant.NewResolver(store.NewMemoryStore(), nil, 0, zerolog.Nop())
	return NewDetector(resolver, zerolog.Nop())
}

func txn(date string, desc string, amount string) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		Date:        d,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Confidence:  1,
	}
}

func TestDetect_MonthlyNetflix(t *testing.T) {
	d := newTestDetector()
	subs, degraded := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-15.99"),
		txn("2024-02-05", "NETFLIX.COM", "-15.99"),
		txn("2024-03-05", "NETFLIX.COM", "-15.99"),
	})

	assert.False(t, degraded)
	require.Len(t, subs, 1)

	sub := subs[0]
	assert.Equal(t, "Netflix", sub.DisplayName)
	assert.Equal(t, model.Monthly, sub.Frequency)
	assert.Equal(t, model.TypeSubscription, sub.RecurringType)
	assert.True(t, sub.IsSubscriptionService)
	assert.True(t, sub.Amount.Equal(decimal.RequireFromString("15.99")))
	assert.True(t, sub.AnnualCost.Equal(decimal.RequireFromString("191.88")),
		"got %s", sub.AnnualCost)
	assert.Equal(t, "sub_netflix", sub.ID)
	assert.Equal(t, "2024-04-05", sub.NextExpected.Format("2006-01-02"))
	assert.Len(t, sub.Transactions, 3)
}

func TestDetect_SingleChargeNeverEmitted(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-15.99"),
	})
	assert.Empty(t, subs, "single-occurrence merchants are never subscriptions")
}

func TestDetect_ExactThirtyDayCadenceHighConfidence(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-01", "SPOTIFY P2E4A8", "-10.99"),
		txn("2024-01-31", "SPOTIFY P2E4A8", "-10.99"),
		txn("2024-03-01", "SPOTIFY P2E4A8", "-10.99"),
		txn("2024-03-31", "SPOTIFY P2E4A8", "-10.99"),
	})

	require.Len(t, subs, 1)
	assert.Equal(t, model.Monthly, subs[0].Frequency)
	assert.GreaterOrEqual(t, subs[0].Confidence, 0.9)
}

func TestDetect_KnownServiceOutsideBandsDefaultsMonthly(t *testing.T) {
	// 180-day spacing falls outside every band; the catalog flag keeps the
	// vendor alive with a monthly default and a 0.75 confidence floor.
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-01", "DUOLINGO", "-6.99"),
		txn("2024-06-29", "DUOLINGO", "-6.99"),
	})

	require.Len(t, subs, 1)
	assert.Equal(t, model.Monthly, subs[0].Frequency)
	assert.GreaterOrEqual(t, subs[0].Confidence, 0.75)
}

func TestDetect_UnknownVendorOutsideBandsRejected(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-01", "ACME CONSULTING 11", "-250.00"),
		txn("2024-06-29", "ACME CONSULTING 11", "-250.00"),
	})
	assert.Empty(t, subs)
}

func TestDetect_WobblyAmountsRejectedUnlessKnown(t *testing.T) {
	d := newTestDetector()

	// Unknown vendor, amounts vary too much: rejected.
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "CORNER DELI 99", "-10.00"),
		txn("2024-02-05", "CORNER DELI 99", "-45.00"),
		txn("2024-03-05", "CORNER DELI 99", "-80.00"),
	})
	assert.Empty(t, subs)

	// Known subscription service, same wobble: kept (tax changes etc).
	subs, _ = d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-10.00"),
		txn("2024-02-05", "NETFLIX.COM", "-45.00"),
		txn("2024-03-05", "NETFLIX.COM", "-80.00"),
	})
	assert.Len(t, subs, 1)
}

func TestDetect_TransfersExcluded(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "INTERAC E-TRANSFER SENT", "-200.00"),
		txn("2024-02-04", "INTERAC E-TRANSFER SENT", "-200.00"),
	})
	assert.Empty(t, subs, "recurring transfers are money movement, not subscriptions")
}

func TestDetect_InvestmentsExcluded(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "QUESTRADE CONTRIBUTION", "-500.00"),
		txn("2024-02-05", "QUESTRADE CONTRIBUTION", "-500.00"),
	})
	assert.Empty(t, subs)
}

func TestDetect_MalformedTransactionsDropped(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		{Description: "NETFLIX.COM", Amount: decimal.RequireFromString("-15.99")}, // no date
		txn("2024-02-05", "NETFLIX.COM", "-15.99"),
		txn("2024-03-05", "NETFLIX.COM", "-15.99"),
	})
	require.Len(t, subs, 1)
	assert.Len(t, subs[0].Transactions, 2, "malformed rows never join a group")
}

func TestDetect_SortedByAnnualCostDescending(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-15.99"),
		txn("2024-02-05", "NETFLIX.COM", "-15.99"),
		txn("2024-01-10", "HYDRO ONE PAYMENT", "-120.00"),
		txn("2024-02-10", "HYDRO ONE PAYMENT", "-120.00"),
	})

	require.Len(t, subs, 2)
	assert.Equal(t, "Hydro One", subs[0].DisplayName)
	assert.Equal(t, model.TypeBill, subs[0].RecurringType)
	assert.True(t, subs[0].AnnualCost.GreaterThan(subs[1].AnnualCost))
}

func TestDetect_AnnualCostRoundTrips(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-15.99"),
		txn("2024-02-05", "NETFLIX.COM", "-15.99"),
		txn("2024-01-01", "DUOLINGO", "-6.99"),
		txn("2024-01-08", "DUOLINGO", "-6.99"),
		txn("2024-01-15", "DUOLINGO", "-6.99"),
	})

	require.NotEmpty(t, subs)
	for _, sub := range subs {
		periods := decimal.NewFromInt(sub.Frequency.PeriodsPerYear())
		assert.True(t, sub.AnnualCost.Div(periods).Equal(sub.Amount),
			"%s: annual cost %s does not round-trip to %s", sub.DisplayName, sub.AnnualCost, sub.Amount)
	}
}

func TestDetect_CaseInsensitiveGrouping(t *testing.T) {
	d := newTestDetector()
	subs, _ := d.Detect(context.Background(), []model.Transaction{
		txn("2024-01-05", "NETFLIX.COM", "-15.99"),
		txn("2024-02-05", "Netflix.com 866-579", "-15.99"),
	})
	require.Len(t, subs, 1)
	assert.Len(t, subs[0].Transactions, 2)
}

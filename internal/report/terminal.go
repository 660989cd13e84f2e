package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/subscope-dev/subscope/internal/model"
)

// WriteTerminal prints a human-readable report with importance color-coding.
func WriteTerminal(w io.Writer, subs []model.RankedSubscription) {
	if len(subs) == 0 {
		fmt.Fprintln(w, "No recurring charges detected.")
		return
	}

	total := decimal.Zero
	for _, s := range subs {
		total = total.Add(s.AnnualCost)
	}

	fmt.Fprintf(w, "%d recurring charges, %s/year\n\n", len(subs), total.StringFixed(2))

	for _, s := range subs {
		importanceColor(s.Importance).Fprintf(w, " %d ", s.Importance)
		fmt.Fprintf(w, " %-24s %8s/%s  %10s/yr", s.DisplayName, s.Amount.StringFixed(2), shortFreq(s.Frequency), s.AnnualCost.StringFixed(2))
		if s.IsUserOverride {
			fmt.Fprint(w, "  (yours)")
		}
		fmt.Fprintln(w)

		if s.CancelRecommendation != "" {
			color.New(color.FgCyan).Fprintf(w, "     %s\n", s.CancelRecommendation)
		}
	}
}

func importanceColor(importance int) *color.Color {
	switch {
	case importance >= 5:
		return color.New(color.BgGreen, color.FgBlack)
	case importance >= 3:
		return color.New(color.BgYellow, color.FgBlack)
	default:
		return color.New(color.BgRed, color.FgWhite)
	}
}

func shortFreq(f model.Frequency) string {
	switch f {
	case model.Weekly:
		return "wk"
	case model.Monthly:
		return "mo"
	case model.Quarterly:
		return "qtr"
	case model.Yearly:
		return "yr"
	}
	return string(f)
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/subscope-dev/subscope/internal/model"
)

// Header is the CSV header for subscription reports.
const Header = "id,display_name,merchant_name,amount,frequency,category,type,importance,user_override,confidence,last_charged,next_expected,annual_cost,reason,cancel_recommendation"

const (
	numFields    = 15
	dateFormat   = "2006-01-02"
	colID        = 0
	colDisplay   = 1
	colMerchant  = 2
	colAmount    = 3
	colFrequency = 4
	colCategory  = 5
	colType      = 6
	colImport    = 7
	colOverride  = 8
	colConf      = 9
	colLast      = 10
	colNext      = 11
	colAnnual    = 12
	colReason    = 13
	colCancel    = 14
)

// MarshalRow converts one ranked subscription to a CSV row.
func MarshalRow(s model.RankedSubscription) []string {
	row := make([]string, numFields)
	row[colID] = s.ID
	row[colDisplay] = s.DisplayName
	row[colMerchant] = s.MerchantName
	row[colAmount] = s.Amount.StringFixed(2)
	row[colFrequency] = string(s.Frequency)
	row[colCategory] = s.Category
	row[colType] = string(s.RecurringType)
	row[colImport] = strconv.Itoa(s.Importance)
	row[colOverride] = strconv.FormatBool(s.IsUserOverride)
	row[colConf] = strconv.FormatFloat(s.Confidence, 'f', 2, 64)
	row[colLast] = s.LastCharged.Format(dateFormat)
	row[colNext] = s.NextExpected.Format(dateFormat)
	row[colAnnual] = s.AnnualCost.StringFixed(2)
	row[colReason] = s.AIReason
	row[colCancel] = s.CancelRecommendation
	return row
}

// WriteCSV writes the full report, header included.
func WriteCSV(w io.Writer, subs []model.RankedSubscription) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range subs {
		if err := cw.Write(MarshalRow(s)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

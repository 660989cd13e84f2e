package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subscope-dev/subscope/internal/model"
)

// GenericParser parses the canonical extraction CSV:
//
//	date,description,amount[,category][,confidence]
//
// with an ISO date and a signed amount (negative = expense). A header row is
// detected and skipped.
type GenericParser struct{}

const genericDateFormat = "2006-01-02"

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the canonical CSV and returns Transactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	if isGenericHeader(records[0]) {
		records = records[1:]
	}

	var txns []model.Transaction
	for i, rec := range records {
		txn, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func isGenericHeader(rec []string) bool {
	return len(rec) >= 3 && strings.EqualFold(strings.TrimSpace(rec[0]), "date")
}

func parseGenericRow(rec []string) (model.Transaction, error) {
	if len(rec) < 3 {
		return model.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(rec))
	}

	date, err := time.Parse(genericDateFormat, strings.TrimSpace(rec[0]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[0], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[2], err)
	}

	txn := model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[1]),
		Amount:      amount,
		Confidence:  1,
	}
	if len(rec) > 3 {
		txn.Category = strings.ToLower(strings.TrimSpace(rec[3]))
	}
	if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
		conf, err := strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing confidence %q: %w", rec[4], err)
		}
		txn.Confidence = conf
	}
	return txn, nil
}

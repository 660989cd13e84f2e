package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericParser_Parse(t *testing.T) {
	csv := `date,description,amount,category,confidence
2024-01-05,NETFLIX.COM,-15.99,entertainment,0.98
2024-01-10,PAYROLL DEPOSIT,2500.00,,
2024-01-12,"SQ *BLUE BOTTLE, SF",-6.50
`
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "NETFLIX.COM", txns[0].Description)
	assert.Equal(t, "-15.99", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "entertainment", txns[0].Category)
	assert.InDelta(t, 0.98, txns[0].Confidence, 0.001)
	assert.Equal(t, 5, txns[0].Date.Day())

	assert.True(t, txns[1].Amount.IsPositive())
	assert.Empty(t, txns[1].Category)
	assert.InDelta(t, 1.0, txns[1].Confidence, 0.001, "confidence defaults to 1")

	assert.Equal(t, "SQ *BLUE BOTTLE, SF", txns[2].Description)
}

func TestGenericParser_NoHeader(t *testing.T) {
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader("2024-01-05,NETFLIX.COM,-15.99\n"))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "NETFLIX.COM", txns[0].Description)
}

func TestGenericParser_BadRows(t *testing.T) {
	p := &GenericParser{}

	_, err := p.Parse(strings.NewReader("05/01/2024,NETFLIX.COM,-15.99\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")

	_, err = p.Parse(strings.NewReader("2024-01-05,NETFLIX.COM,fifteen\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")

	_, err = p.Parse(strings.NewReader("2024-01-05,NETFLIX.COM\n"))
	require.Error(t, err)
}

func TestGenericParser_Empty(t *testing.T) {
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)

	txns, err = p.Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

const chaseSample = `Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
DEBIT,01/03/2025,GITHUB *PRO SUBSCRIPTION,-4.00,ACH_DEBIT,996.00,
DEBIT,01/07/2025,NETFLIX.COM,16.49,DEBIT_CARD,979.51,
CREDIT,01/15/2025,ACME CONSULTING INVOICE 1042,3500.00,ACH_CREDIT,4479.51,
`

func TestChaseParser_Parse(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(chaseSample))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "-4.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 3, txns[0].Date.Day())

	// Unsigned debit magnitude is normalized to an outflow.
	assert.Equal(t, "-16.49", txns[1].Amount.StringFixed(2))

	assert.True(t, txns[2].Amount.IsPositive())
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	assert.NotNil(t, reg.Get("generic"))
	assert.NotNil(t, reg.Get("CHASE"))
	assert.Nil(t, reg.Get("monzo"))
	assert.ElementsMatch(t, []string{"generic", "chase"}, reg.Formats())

	assert.Panics(t, func() { reg.Register(&GenericParser{}) })
}

func TestParseFile_UnknownFormat(t *testing.T) {
	_, err := ParseFile(DefaultRegistry(), "monzo", "whatever.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

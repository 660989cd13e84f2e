package classify

import (
	"regexp"
	"strings"

	"github.com/subscope-dev/subscope/internal/model"
)

// MoneyMovement is the outcome of the transfer/investment rule pass. A zero
// Type means no rule matched.
type MoneyMovement struct {
	Type       model.RecurringType // TypeTransfer, TypeInvestment, or ""
	SubType    string
	Confidence float64
}

// Recurring money movement is a near-certain lexical signal, so confidence is
// fixed per rule group rather than computed.
const (
	investmentConfidence = 0.95
	transferConfidence   = 0.90
)

type rule struct {
	re      *regexp.Regexp
	subType string
}

// Classify tests a description against the investment rules (more specific)
// and then the transfer rules. First matching rule wins.
func Classify(description string) MoneyMovement {
	desc := strings.ToUpper(description)
	for _, r := range investmentRules {
		if r.re.MatchString(desc) {
			return MoneyMovement{Type: model.TypeInvestment, SubType: r.subType, Confidence: investmentConfidence}
		}
	}
	for _, r := range transferRules {
		if r.re.MatchString(desc) {
			return MoneyMovement{Type: model.TypeTransfer, SubType: r.subType, Confidence: transferConfidence}
		}
	}
	return MoneyMovement{}
}

// Apply reclassifies a transaction in place when a rule matches: the rule's
// category unconditionally replaces any earlier one, and confidence is raised
// to at least the rule's value, never lowered.
func Apply(txn *model.Transaction) MoneyMovement {
	m := Classify(txn.Description)
	if m.Type == "" {
		return m
	}
	txn.Category = string(m.Type)
	if m.Confidence > txn.Confidence {
		txn.Confidence = m.Confidence
	}
	return m
}

// IsExcluded reports whether a transaction is recurring money movement rather
// than discretionary spend, and so must be excluded from detection.
func IsExcluded(description string) bool {
	return Classify(description).Type != ""
}

var investmentRules = []rule{
	// Registered account keywords.
	{regexp.MustCompile(`\bRRSP\b`), "registered_account"},
	{regexp.MustCompile(`\bTFSA\b`), "registered_account"},
	{regexp.MustCompile(`\bRESP\b`), "registered_account"},
	{regexp.MustCompile(`\bFHSA\b`), "registered_account"},
	{regexp.MustCompile(`\bRRIF\b`), "registered_account"},
	{regexp.MustCompile(`\bLIRA\b`), "registered_account"},
	{regexp.MustCompile(`\b401[\( ]?K\)?\b`), "registered_account"},
	{regexp.MustCompile(`\bROTH IRA\b`), "registered_account"},
	{regexp.MustCompile(`\bIRA (?:CONTRIBUTION|DEPOSIT)\b`), "registered_account"},

	// Brokerages.
	{regexp.MustCompile(`QUESTRADE`), "brokerage"},
	{regexp.MustCompile(`WEALTHSIMPLE`), "brokerage"},
	{regexp.MustCompile(`VANGUARD`), "brokerage"},
	{regexp.MustCompile(`FIDELITY`), "brokerage"},
	{regexp.MustCompile(`SCHWAB`), "brokerage"},
	{regexp.MustCompile(`E\*?TRADE`), "brokerage"},
	{regexp.MustCompile(`TD AMERITRADE`), "brokerage"},
	{regexp.MustCompile(`INTERACTIVE BROKERS`), "brokerage"},
	{regexp.MustCompile(`ROBINHOOD`), "brokerage"},
	{regexp.MustCompile(`WEBULL`), "brokerage"},
	{regexp.MustCompile(`EDWARD JONES`), "brokerage"},
	{regexp.MustCompile(`INVESTORLINE`), "brokerage"},
	{regexp.MustCompile(`DIRECT INVESTING`), "brokerage"},
	{regexp.MustCompile(`INVESTOR'?S EDGE`), "brokerage"},
	{regexp.MustCompile(`SCOTIA ITRADE`), "brokerage"},

	// Contribution / distribution vocabulary.
	{regexp.MustCompile(`\bDIVIDEND\b`), "distribution"},
	{regexp.MustCompile(`\bCAPITAL GAINS?\b`), "distribution"},
	{regexp.MustCompile(`\bDRIP\b`), "distribution"},
	{regexp.MustCompile(`MUTUAL FUNDS?\b`), "fund_purchase"},
	{regexp.MustCompile(`\bETF (?:PURCHASE|BUY)\b`), "fund_purchase"},
	{regexp.MustCompile(`\bSHARE PURCHASE\b`), "fund_purchase"},
	{regexp.MustCompile(`\bCONTRIBUTION\b`), "contribution"},

	// Crypto and robo-advisor platforms.
	{regexp.MustCompile(`COINBASE`), "crypto"},
	{regexp.MustCompile(`BINANCE`), "crypto"},
	{regexp.MustCompile(`KRAKEN`), "crypto"},
	{regexp.MustCompile(`CRYPTO\.COM`), "crypto"},
	{regexp.MustCompile(`SHAKEPAY`), "crypto"},
	{regexp.MustCompile(`BITBUY`), "crypto"},
	{regexp.MustCompile(`\bNDAX\b`), "crypto"},
	{regexp.MustCompile(`BETTERMENT`), "robo_advisor"},
	{regexp.MustCompile(`WEALTHFRONT`), "robo_advisor"},
	{regexp.MustCompile(`\bACORNS\b`), "robo_advisor"},
	{regexp.MustCompile(`\bSTASH\b`), "robo_advisor"},
	{regexp.MustCompile(`\bMOKA\b`), "robo_advisor"},
	{regexp.MustCompile(`\bQTRADE\b`), "robo_advisor"},
}

var transferRules = []rule{
	// E-transfers.
	{regexp.MustCompile(`INTERAC E-?TRANSFER`), "etransfer"},
	{regexp.MustCompile(`\bE-?TRANSFER\b`), "etransfer"},
	{regexp.MustCompile(`\bEMT\b`), "etransfer"},
	{regexp.MustCompile(`\bZELLE\b`), "etransfer"},
	{regexp.MustCompile(`\bVENMO\b`), "etransfer"},
	{regexp.MustCompile(`CASH APP`), "etransfer"},

	// Wires.
	{regexp.MustCompile(`WIRE TRANSFER`), "wire"},
	{regexp.MustCompile(`(?:INCOMING|OUTGOING) WIRE`), "wire"},
	{regexp.MustCompile(`WESTERN UNION`), "wire"},
	{regexp.MustCompile(`MONEYGRAM`), "wire"},
	{regexp.MustCompile(`\bREMITLY\b`), "wire"},
	{regexp.MustCompile(`\bWISE TRANSFER\b`), "wire"},
	{regexp.MustCompile(`TRANSFERWISE`), "wire"},

	// EFT / ACH / pre-authorized debits.
	{regexp.MustCompile(`\bEFT\b`), "eft"},
	{regexp.MustCompile(`\bACH\b`), "eft"},
	{regexp.MustCompile(`DIRECT DEBIT`), "eft"},
	{regexp.MustCompile(`PRE-?AUTHORIZED (?:DEBIT|PAYMENT)`), "eft"},
	{regexp.MustCompile(`\bPAD\b`), "eft"},

	// Internal transfers.
	{regexp.MustCompile(`TRANSFER (?:TO|FROM)\b`), "internal"},
	{regexp.MustCompile(`ONLINE TRANSFER`), "internal"},
	{regexp.MustCompile(`INTERNAL TRANSFER`), "internal"},
	{regexp.MustCompile(`\bTFR-(?:TO|FR)\b`), "internal"},
	{regexp.MustCompile(`BANK TRANSFER`), "internal"},
	{regexp.MustCompile(`BALANCE TRANSFER`), "internal"},

	// Bill payments.
	{regexp.MustCompile(`BILL PAYMENT`), "bill_pay"},
	{regexp.MustCompile(`ONLINE BILL PAY`), "bill_pay"},
	{regexp.MustCompile(`\bBILL PAY\b`), "bill_pay"},
	{regexp.MustCompile(`CREDIT CARD PAYMENT`), "bill_pay"},
	{regexp.MustCompile(`PAYMENT - THANK YOU`), "bill_pay"},
	{regexp.MustCompile(`LOAN PAYMENT`), "bill_pay"},
	{regexp.MustCompile(`MORTGAGE PAYMENT`), "bill_pay"},

	// Payroll and deposits.
	{regexp.MustCompile(`\bPAYROLL\b`), "payroll"},
	{regexp.MustCompile(`DIRECT DEPOSIT`), "payroll"},
	{regexp.MustCompile(`\bSALARY\b`), "payroll"},
	{regexp.MustCompile(`\bPAY\b.*\bDEPOSIT\b`), "payroll"},
	{regexp.MustCompile(`CHEQUE DEPOSIT`), "deposit"},
	{regexp.MustCompile(`CHECK DEPOSIT`), "deposit"},
}

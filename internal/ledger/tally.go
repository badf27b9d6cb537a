package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tolerance within which expected and actual positions are considered
// tallied: one currency minor unit.
var Tolerance = decimal.NewFromFloat(0.01)

// TallyResult compares the expected position (revenue minus expenses)
// against the actual position (cash in hand plus bank balance).
type TallyResult struct {
	Expected  decimal.Decimal `json:"expected"`
	Actual    decimal.Decimal `json:"actual"`
	Diff      decimal.Decimal `json:"diff"`
	IsTallied bool            `json:"is_tallied"`
}

// VerifyTally is a diagnostic computation only; a mismatch is reported
// for manual reconciliation, never acted on automatically.
func VerifyTally(s *DaySummary) TallyResult {
	expected := s.TotalRevenue.Sub(s.TotalExpenses)
	actual := s.CashInHand.Add(s.BankBalance)
	diff := actual.Sub(expected)

	return TallyResult{
		Expected:  expected,
		Actual:    actual,
		Diff:      diff,
		IsTallied: diff.Abs().LessThan(Tolerance),
	}
}

// Finding converts an untallied result into a reportable finding.
// Returns nil when the books tally.
func (t TallyResult) Finding() *Finding {
	if t.IsTallied {
		return nil
	}
	return &Finding{
		Code:    FindingToleranceExceeded,
		Message: fmt.Sprintf("tally mismatch: expected %s, actual %s (diff %s)", t.Expected, t.Actual, t.Diff),
	}
}

package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FindingCode classifies a data-quality finding. Findings are never
// fatal: they are reported to the operator for manual review.
type FindingCode string

const (
	FindingAmbiguousOpening  FindingCode = "AMBIGUOUS_OPENING_BALANCE"
	FindingToleranceExceeded FindingCode = "TOLERANCE_EXCEEDED"
	FindingNegativeCash      FindingCode = "NEGATIVE_CASH_IN_HAND"
	FindingNegativeBank      FindingCode = "NEGATIVE_BANK_BALANCE"
	FindingNegativeWallet    FindingCode = "NEGATIVE_WALLET_BALANCE"
	FindingNegativePanWallet FindingCode = "NEGATIVE_PAN_WALLET"
)

type Finding struct {
	Code    FindingCode `json:"code"`
	Message string      `json:"message"`
	EntryID int         `json:"entry_id,omitempty"`
}

func appendOpeningConflict(findings []Finding, entryID int, field string, first, declared decimal.Decimal) []Finding {
	// Zero means the entry declared nothing; re-declaring the same
	// value is harmless (happens when a day's entries are re-edited).
	if declared.IsZero() || declared.Equal(first) {
		return findings
	}
	return append(findings, Finding{
		Code:    FindingAmbiguousOpening,
		Message: fmt.Sprintf("entry %d declares %s=%s but the day opened with %s", entryID, field, declared, first),
		EntryID: entryID,
	})
}

// BalanceFindings reports derived balances that went negative, the
// same checks the operator's mismatch panel shows.
func (s *DaySummary) BalanceFindings() []Finding {
	var findings []Finding
	if s.CashInHand.IsNegative() {
		findings = append(findings, Finding{
			Code:    FindingNegativeCash,
			Message: fmt.Sprintf("negative cash in hand: %s", s.CashInHand),
		})
	}
	if s.BankBalance.IsNegative() {
		findings = append(findings, Finding{
			Code:    FindingNegativeBank,
			Message: fmt.Sprintf("negative bank balance: %s", s.BankBalance),
		})
	}
	if s.WalletBalance.IsNegative() {
		findings = append(findings, Finding{
			Code:    FindingNegativeWallet,
			Message: fmt.Sprintf("negative wallet balance: %s", s.WalletBalance),
		})
	}
	if s.PanWalletBalance.IsNegative() {
		findings = append(findings, Finding{
			Code:    FindingNegativePanWallet,
			Message: fmt.Sprintf("negative PAN wallet balance: %s", s.PanWalletBalance),
		})
	}
	return findings
}

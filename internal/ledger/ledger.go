// Package ledger is the reconciliation core of the finance tracker:
// pure functions that project a day's entries into running balances
// for cash, bank, ED wallet and PAN wallet, and check that the books
// tally. Nothing in here touches the database or the clock.
package ledger

import (
	"sort"

	"akshaya-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Fixed business constants for PAN card operations: the customer pays
// 250 per operation and the PAN wallet is debited 102 per operation.
var (
	PanRevenuePerOp = decimal.NewFromInt(250)
	PanUsagePerOp   = decimal.NewFromInt(102)
)

// OpeningBalances seed a day's running totals. They come from the
// first entry of the day; a zero value means "no opening declared".
type OpeningBalances struct {
	Bank      decimal.Decimal `json:"bank"`
	Cash      decimal.Decimal `json:"cash"`
	Wallet    decimal.Decimal `json:"wallet"`
	PanWallet decimal.Decimal `json:"pan_wallet"`
}

// DaySummary is the derived tally sheet for one business day. It is
// never stored; it is recomputed from the day's entries on every read.
type DaySummary struct {
	Opening OpeningBalances `json:"opening"`

	DirectRevenueCash decimal.Decimal `json:"direct_revenue_cash"`
	DirectRevenueGpay decimal.Decimal `json:"direct_revenue_gpay"`
	ServiceFeesCash   decimal.Decimal `json:"service_fees_cash"`
	ServiceFeesGpay   decimal.Decimal `json:"service_fees_gpay"`

	CashDeposited decimal.Decimal `json:"cash_deposited"`
	GpayDeposited decimal.Decimal `json:"gpay_deposited"`

	CashExpenses  decimal.Decimal `json:"cash_expenses"`
	GpayExpenses  decimal.Decimal `json:"gpay_expenses"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`

	ThirdpartyPaidCash decimal.Decimal `json:"thirdparty_paid_cash"`
	ThirdpartyPaidGpay decimal.Decimal `json:"thirdparty_paid_gpay"`

	WalletTopup decimal.Decimal `json:"wallet_topup"` // ED wallet top-ups (gpay)
	PortalUsed  decimal.Decimal `json:"portal_used"`  // portal payments made from the wallet

	PanOperations  int             `json:"pan_operations"`
	PanRevenueCash decimal.Decimal `json:"pan_revenue_cash"`
	PanRevenueGpay decimal.Decimal `json:"pan_revenue_gpay"`
	PanWalletTopup decimal.Decimal `json:"pan_wallet_topup"`
	PanUsage       decimal.Decimal `json:"pan_usage"`

	TotalRevenue decimal.Decimal `json:"total_revenue"`
	NetProfit    decimal.Decimal `json:"net_profit"`

	CashInHand       decimal.Decimal `json:"cash_in_hand"`
	BankBalance      decimal.Decimal `json:"bank_balance"`
	WalletBalance    decimal.Decimal `json:"wallet_balance"`
	PanWalletBalance decimal.Decimal `json:"pan_wallet_balance"`

	PendingReceive decimal.Decimal `json:"pending_receive"`
	PendingGive    decimal.Decimal `json:"pending_give"`
	NetPending     decimal.Decimal `json:"net_pending"`
}

// SortEntries orders entries by created_at ascending, with the serial
// id as tie-break so intra-day order is total and stable.
func SortEntries(entries []*models.DailyEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

// ExtractOpening returns the opening balances declared on the first
// entry of the day. Only the first entry is honored; any later entry
// declaring a different non-zero opening value produces an
// AmbiguousOpeningBalance finding instead of silently winning.
// Entries must already be in intra-day order (see SortEntries).
func ExtractOpening(entries []*models.DailyEntry) (OpeningBalances, []Finding) {
	if len(entries) == 0 {
		return OpeningBalances{}, nil
	}

	first := entries[0]
	opening := OpeningBalances{
		Bank:      first.OpeningBankBalance,
		Cash:      first.OpeningCashBalance,
		Wallet:    first.OpeningWalletBalance,
		PanWallet: first.OpeningPanWallet,
	}

	var findings []Finding
	for _, e := range entries[1:] {
		findings = appendOpeningConflict(findings, e.ID, "opening_bank_balance", opening.Bank, e.OpeningBankBalance)
		findings = appendOpeningConflict(findings, e.ID, "opening_cash_balance", opening.Cash, e.OpeningCashBalance)
		findings = appendOpeningConflict(findings, e.ID, "opening_wallet_balance", opening.Wallet, e.OpeningWalletBalance)
		findings = appendOpeningConflict(findings, e.ID, "opening_pan_wallet", opening.PanWallet, e.OpeningPanWallet)
	}
	return opening, findings
}

// ComputeSummary derives the day's balances from all entries of one
// calendar day plus the opening balances. It is a pure function:
// deterministic for the same input order, no side effects. An empty
// entry list yields the opening balances unchanged.
func ComputeSummary(entries []*models.DailyEntry, opening OpeningBalances) *DaySummary {
	s := &DaySummary{Opening: opening}

	for _, e := range entries {
		s.DirectRevenueCash = s.DirectRevenueCash.Add(e.CreditedCash)
		s.DirectRevenueGpay = s.DirectRevenueGpay.Add(e.CreditedGpay)
		s.ServiceFeesCash = s.ServiceFeesCash.Add(e.ThirdpartyFeeCash)
		s.ServiceFeesGpay = s.ServiceFeesGpay.Add(e.ThirdpartyFeeGpay)

		s.CashDeposited = s.CashDeposited.Add(e.DepositCash)
		s.GpayDeposited = s.GpayDeposited.Add(e.DepositGpay)

		s.CashExpenses = s.CashExpenses.Add(e.ExpenseSelfCash).Add(e.ExpenseStaffCash).
			Add(e.ExpenseEnterpriseCash).Add(e.ExpenseMiscCash)
		s.GpayExpenses = s.GpayExpenses.Add(e.ExpenseSelfGpay).Add(e.ExpenseStaffGpay).
			Add(e.ExpenseEnterpriseGpay).Add(e.ExpenseMiscGpay)

		s.ThirdpartyPaidCash = s.ThirdpartyPaidCash.Add(e.ThirdpartyPaidCash)
		s.ThirdpartyPaidGpay = s.ThirdpartyPaidGpay.Add(e.ThirdpartyPaidGpay)

		s.WalletTopup = s.WalletTopup.Add(e.EDWalletGpay)
		s.PortalUsed = s.PortalUsed.Add(e.PortalGpay)

		s.PanOperations += e.PanOperationCash + e.PanOperationGpay
		s.PanRevenueCash = s.PanRevenueCash.Add(PanRevenuePerOp.Mul(decimal.NewFromInt(int64(e.PanOperationCash))))
		s.PanRevenueGpay = s.PanRevenueGpay.Add(PanRevenuePerOp.Mul(decimal.NewFromInt(int64(e.PanOperationGpay))))
		s.PanWalletTopup = s.PanWalletTopup.Add(e.PanWalletTopup)

		s.PendingReceive = s.PendingReceive.Add(e.ReceiveCash).Add(e.ReceiveGpay)
		s.PendingGive = s.PendingGive.Add(e.GiveCash).Add(e.GiveGpay)
	}

	s.TotalExpenses = s.CashExpenses.Add(s.GpayExpenses)
	s.PanUsage = PanUsagePerOp.Mul(decimal.NewFromInt(int64(s.PanOperations)))

	s.TotalRevenue = s.DirectRevenueCash.Add(s.DirectRevenueGpay).
		Add(s.ServiceFeesCash).Add(s.ServiceFeesGpay).
		Add(s.PanRevenueCash).Add(s.PanRevenueGpay)

	// Money leaves the hand when banked: deposits reduce cash in hand
	// and credit the bank, whichever channel they came in on.
	s.CashInHand = opening.Cash.
		Add(s.DirectRevenueCash).
		Add(s.ServiceFeesCash).
		Add(s.PanRevenueCash).
		Sub(s.CashExpenses).
		Sub(s.CashDeposited).
		Sub(s.ThirdpartyPaidCash)

	s.BankBalance = opening.Bank.
		Add(s.CashDeposited).
		Add(s.GpayDeposited).
		Add(s.DirectRevenueGpay).
		Add(s.ServiceFeesGpay).
		Add(s.PanRevenueGpay).
		Sub(s.GpayExpenses).
		Sub(s.WalletTopup).
		Sub(s.ThirdpartyPaidGpay).
		Sub(s.PanWalletTopup)

	s.WalletBalance = opening.Wallet.Add(s.WalletTopup).Sub(s.PortalUsed)
	s.PanWalletBalance = opening.PanWallet.Add(s.PanWalletTopup).Sub(s.PanUsage)

	s.NetProfit = s.TotalRevenue.
		Sub(s.TotalExpenses).
		Sub(s.PortalUsed).
		Sub(s.ThirdpartyPaidCash).
		Sub(s.ThirdpartyPaidGpay).
		Sub(s.PanUsage)

	s.NetPending = s.PendingReceive.Sub(s.PendingGive)

	return s
}

// Summarize is the everyday entry point: it orders a copy of the
// day's entries, extracts the opening balances and computes the
// summary, returning any data-quality findings alongside.
func Summarize(entries []*models.DailyEntry) (*DaySummary, []Finding) {
	sorted := make([]*models.DailyEntry, len(entries))
	copy(sorted, entries)
	SortEntries(sorted)

	opening, findings := ExtractOpening(sorted)
	summary := ComputeSummary(sorted, opening)
	findings = append(findings, summary.BalanceFindings()...)
	return summary, findings
}

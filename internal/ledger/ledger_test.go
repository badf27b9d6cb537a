package ledger

import (
	"testing"
	"time"

	"akshaya-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func entryAt(id int, at time.Time) *models.DailyEntry {
	return &models.DailyEntry{ID: id, CreatedAt: at}
}

func TestComputeSummaryEmptyDayKeepsOpening(t *testing.T) {
	opening := OpeningBalances{
		Bank:      dec("12000"),
		Cash:      dec("500"),
		Wallet:    dec("300"),
		PanWallet: dec("1020"),
	}

	s := ComputeSummary(nil, opening)

	assert.True(t, s.CashInHand.Equal(dec("500")))
	assert.True(t, s.BankBalance.Equal(dec("12000")))
	assert.True(t, s.WalletBalance.Equal(dec("300")))
	assert.True(t, s.PanWalletBalance.Equal(dec("1020")))
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.NetProfit.IsZero())
}

func TestComputeSummarySingleEntry(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedCash = dec("1000")
	e.ExpenseMiscCash = dec("200")

	s := ComputeSummary([]*models.DailyEntry{e}, OpeningBalances{})

	assert.True(t, s.TotalRevenue.Equal(dec("1000")))
	assert.True(t, s.TotalExpenses.Equal(dec("200")))
	assert.True(t, s.CashInHand.Equal(dec("800")), "cash in hand = %s", s.CashInHand)
	assert.True(t, s.NetProfit.Equal(dec("800")))
}

func TestComputeSummaryPanOperations(t *testing.T) {
	e := entryAt(1, time.Now())
	e.PanOperationCash = 4

	s := ComputeSummary([]*models.DailyEntry{e}, OpeningBalances{PanWallet: dec("500")})

	assert.Equal(t, 4, s.PanOperations)
	assert.True(t, s.PanRevenueCash.Equal(dec("1000")), "4 ops at 250 each")
	assert.True(t, s.PanUsage.Equal(dec("408")), "4 ops at 102 each")
	assert.True(t, s.PanWalletBalance.Equal(dec("92")), "500 - 408")
	assert.True(t, s.CashInHand.Equal(dec("1000")))
}

func TestComputeSummaryDepositsMoveCashToBank(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedCash = dec("5000")
	e.DepositCash = dec("3000")

	s := ComputeSummary([]*models.DailyEntry{e}, OpeningBalances{Bank: dec("1000"), Cash: dec("200")})

	assert.True(t, s.CashInHand.Equal(dec("2200")), "200 + 5000 - 3000")
	assert.True(t, s.BankBalance.Equal(dec("4000")), "1000 + 3000")
}

func TestComputeSummaryGpayFlowsThroughBank(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedGpay = dec("2500")
	e.ExpenseStaffGpay = dec("400")
	e.EDWalletGpay = dec("1000")
	e.PortalGpay = dec("700")

	s := ComputeSummary([]*models.DailyEntry{e}, OpeningBalances{Bank: dec("100"), Wallet: dec("50")})

	assert.True(t, s.BankBalance.Equal(dec("1200")), "100 + 2500 - 400 - 1000")
	assert.True(t, s.WalletBalance.Equal(dec("350")), "50 + 1000 - 700")
	assert.True(t, s.CashInHand.IsZero())
}

// Money is conserved: every inflow ends up in exactly one balance and
// every outflow leaves exactly one. The sum of closing balances equals
// the sum of openings plus revenue minus everything that left the
// business (expenses, thirdparty passthrough, portal use, pan usage).
func TestComputeSummaryConservation(t *testing.T) {
	e1 := entryAt(1, time.Now())
	e1.CreditedCash = dec("4000")
	e1.CreditedGpay = dec("1500")
	e1.DepositCash = dec("2000")
	e1.ExpenseSelfCash = dec("300")
	e1.ThirdpartyFeeGpay = dec("150")
	e1.ThirdpartyPaidGpay = dec("850")

	e2 := entryAt(2, time.Now().Add(time.Minute))
	e2.PanOperationGpay = 2
	e2.PanWalletTopup = dec("500")
	e2.EDWalletGpay = dec("600")
	e2.PortalGpay = dec("450")

	opening := OpeningBalances{Bank: dec("10000"), Cash: dec("800"), Wallet: dec("120"), PanWallet: dec("204")}
	entries := []*models.DailyEntry{e1, e2}
	s := ComputeSummary(entries, opening)

	openingSum := opening.Bank.Add(opening.Cash).Add(opening.Wallet).Add(opening.PanWallet)
	closingSum := s.BankBalance.Add(s.CashInHand).Add(s.WalletBalance).Add(s.PanWalletBalance)
	outflows := s.TotalExpenses.
		Add(s.ThirdpartyPaidCash).Add(s.ThirdpartyPaidGpay).
		Add(s.PortalUsed).Add(s.PanUsage)

	assert.True(t, closingSum.Equal(openingSum.Add(s.TotalRevenue).Sub(outflows)),
		"closing %s, opening %s, revenue %s, outflows %s", closingSum, openingSum, s.TotalRevenue, outflows)
}

func TestComputeSummaryDeterministic(t *testing.T) {
	e1 := entryAt(1, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	e1.CreditedCash = dec("123.45")
	e1.OpeningCashBalance = dec("1000")
	e2 := entryAt(2, time.Date(2025, 7, 1, 11, 30, 0, 0, time.UTC))
	e2.ExpenseMiscGpay = dec("67.89")
	e2.CreditedGpay = dec("200")

	first, firstFindings := Summarize([]*models.DailyEntry{e1, e2})
	second, secondFindings := Summarize([]*models.DailyEntry{e2, e1})

	assert.Equal(t, first, second)
	assert.Equal(t, firstFindings, secondFindings)
}

func TestExtractOpeningFirstEntryWins(t *testing.T) {
	e1 := entryAt(1, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	e1.OpeningCashBalance = dec("500")
	e1.OpeningBankBalance = dec("9000")
	e2 := entryAt(2, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	e2.OpeningCashBalance = dec("750")

	opening, findings := ExtractOpening([]*models.DailyEntry{e1, e2})

	assert.True(t, opening.Cash.Equal(dec("500")))
	assert.True(t, opening.Bank.Equal(dec("9000")))
	require.Len(t, findings, 1)
	assert.Equal(t, FindingAmbiguousOpening, findings[0].Code)
	assert.Equal(t, 2, findings[0].EntryID)
}

func TestExtractOpeningZeroRedeclarationIsQuiet(t *testing.T) {
	e1 := entryAt(1, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	e1.OpeningCashBalance = dec("500")
	e2 := entryAt(2, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	e3 := entryAt(3, time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC))
	e3.OpeningCashBalance = dec("500")

	_, findings := ExtractOpening([]*models.DailyEntry{e1, e2, e3})
	assert.Empty(t, findings)
}

func TestSortEntriesTieBreaksOnID(t *testing.T) {
	at := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	entries := []*models.DailyEntry{entryAt(9, at), entryAt(3, at), entryAt(7, at.Add(-time.Hour))}

	SortEntries(entries)

	assert.Equal(t, []int{7, 3, 9}, []int{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	e1 := entryAt(2, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	e2 := entryAt(1, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	entries := []*models.DailyEntry{e1, e2}

	_, _ = Summarize(entries)

	assert.Same(t, e1, entries[0])
	assert.Same(t, e2, entries[1])
}

func TestBalanceFindingsNegativeCash(t *testing.T) {
	e := entryAt(1, time.Now())
	e.ExpenseMiscCash = dec("300")

	_, findings := Summarize([]*models.DailyEntry{e})

	require.Len(t, findings, 1)
	assert.Equal(t, FindingNegativeCash, findings[0].Code)
}

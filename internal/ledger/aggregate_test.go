package ledger

import (
	"testing"
	"time"

	"akshaya-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMatchesDailyFormulas(t *testing.T) {
	e1 := entryAt(1, time.Now())
	e1.CreditedCash = dec("2000")
	e1.ThirdpartyFeeGpay = dec("100")
	e1.ThirdpartyPaidGpay = dec("900")
	e1.ExpenseStaffCash = dec("250")

	e2 := entryAt(2, time.Now().Add(time.Hour))
	e2.PanOperationCash = 3
	e2.PortalGpay = dec("400")

	totals := Aggregate([]*models.DailyEntry{e1, e2})

	assert.Equal(t, 2, totals.EntryCount)
	assert.Equal(t, 3, totals.PanOperations)
	assert.True(t, totals.Revenue.Equal(dec("2850")), "2000 + 100 + 3*250, got %s", totals.Revenue)
	assert.True(t, totals.Expenses.Equal(dec("250")))
	assert.True(t, totals.PanUsage.Equal(dec("306")))
	assert.True(t, totals.NetProfit.Equal(dec("994")), "2850 - 250 - 900 - 400 - 306, got %s", totals.NetProfit)

	// The period net profit equals the sum of the daily net profits.
	s1 := ComputeSummary([]*models.DailyEntry{e1}, OpeningBalances{})
	s2 := ComputeSummary([]*models.DailyEntry{e2}, OpeningBalances{})
	assert.True(t, totals.NetProfit.Equal(s1.NetProfit.Add(s2.NetProfit)))
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Zero(t, totals.EntryCount)
	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.NetProfit.IsZero())
}

func TestExpenseBreakdown(t *testing.T) {
	e1 := entryAt(1, time.Now())
	e1.ExpenseSelfCash = dec("100")
	e1.ExpenseStaffGpay = dec("200")
	e2 := entryAt(2, time.Now())
	e2.ExpenseSelfGpay = dec("50")
	e2.ExpenseMiscCash = dec("75")

	lines := ExpenseBreakdown([]*models.DailyEntry{e1, e2})

	require.Len(t, lines, 4)
	assert.Equal(t, "Self", lines[0].Category)
	assert.True(t, lines[0].Cash.Equal(dec("100")))
	assert.True(t, lines[0].Gpay.Equal(dec("50")))
	assert.True(t, lines[1].Gpay.Equal(dec("200")))
	assert.True(t, lines[2].Cash.IsZero())
	assert.True(t, lines[3].Cash.Equal(dec("75")))
}

func TestCategorySummaryOrdering(t *testing.T) {
	e1 := entryAt(1, time.Now())
	e1.Item = "Aadhaar Update"
	e1.CreditedCash = dec("300")
	e2 := entryAt(2, time.Now())
	e2.Item = "Passport Form"
	e2.CreditedGpay = dec("1500")
	e3 := entryAt(3, time.Now())
	e3.CreditedCash = dec("80") // no item label
	e4 := entryAt(4, time.Now())
	e4.PanOperationGpay = 2

	totals := CategorySummary([]*models.DailyEntry{e1, e2, e3, e4})

	require.Len(t, totals, 4)
	assert.Equal(t, "Passport Form", totals[0].Item)
	assert.Equal(t, "PAN Operations", totals[1].Item)
	assert.True(t, totals[1].Amount.Equal(dec("500")))
	assert.Equal(t, "Aadhaar Update", totals[2].Item)
	assert.Equal(t, "Miscellaneous", totals[3].Item)
}

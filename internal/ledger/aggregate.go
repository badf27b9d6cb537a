package ledger

import (
	"sort"

	"akshaya-backend/internal/models"

	"github.com/shopspring/decimal"
)

// PeriodTotals aggregates entries over a week or month. Opening
// balances are a per-day concept and do not participate here.
type PeriodTotals struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	ThirdpartyPaid decimal.Decimal `json:"thirdparty_paid"`
	PortalUsed     decimal.Decimal `json:"portal_used"`
	PanOperations  int             `json:"pan_operations"`
	PanUsage       decimal.Decimal `json:"pan_usage"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	EntryCount     int             `json:"entry_count"`
}

// Aggregate computes period totals with the same formula set as the
// daily summary, so a week of tallied days sums to a tallied week.
func Aggregate(entries []*models.DailyEntry) PeriodTotals {
	var t PeriodTotals
	t.EntryCount = len(entries)

	for _, e := range entries {
		t.Revenue = t.Revenue.
			Add(e.CreditedCash).Add(e.CreditedGpay).
			Add(e.ThirdpartyFeeCash).Add(e.ThirdpartyFeeGpay)
		t.Expenses = t.Expenses.
			Add(e.ExpenseSelfCash).Add(e.ExpenseSelfGpay).
			Add(e.ExpenseStaffCash).Add(e.ExpenseStaffGpay).
			Add(e.ExpenseEnterpriseCash).Add(e.ExpenseEnterpriseGpay).
			Add(e.ExpenseMiscCash).Add(e.ExpenseMiscGpay)
		t.ThirdpartyPaid = t.ThirdpartyPaid.Add(e.ThirdpartyPaidCash).Add(e.ThirdpartyPaidGpay)
		t.PortalUsed = t.PortalUsed.Add(e.PortalGpay)
		t.PanOperations += e.PanOperationCash + e.PanOperationGpay
	}

	panOps := decimal.NewFromInt(int64(t.PanOperations))
	t.Revenue = t.Revenue.Add(PanRevenuePerOp.Mul(panOps))
	t.PanUsage = PanUsagePerOp.Mul(panOps)
	t.NetProfit = t.Revenue.Sub(t.Expenses).Sub(t.ThirdpartyPaid).Sub(t.PortalUsed).Sub(t.PanUsage)

	return t
}

// ExpenseLine is one expense category split by channel.
type ExpenseLine struct {
	Category string          `json:"category"`
	Cash     decimal.Decimal `json:"cash"`
	Gpay     decimal.Decimal `json:"gpay"`
}

// ExpenseBreakdown splits expenses into the four fixed categories the
// entry form offers.
func ExpenseBreakdown(entries []*models.DailyEntry) []ExpenseLine {
	lines := []ExpenseLine{
		{Category: "Self"},
		{Category: "Staff"},
		{Category: "Enterprise"},
		{Category: "Miscellaneous"},
	}
	for _, e := range entries {
		lines[0].Cash = lines[0].Cash.Add(e.ExpenseSelfCash)
		lines[0].Gpay = lines[0].Gpay.Add(e.ExpenseSelfGpay)
		lines[1].Cash = lines[1].Cash.Add(e.ExpenseStaffCash)
		lines[1].Gpay = lines[1].Gpay.Add(e.ExpenseStaffGpay)
		lines[2].Cash = lines[2].Cash.Add(e.ExpenseEnterpriseCash)
		lines[2].Gpay = lines[2].Gpay.Add(e.ExpenseEnterpriseGpay)
		lines[3].Cash = lines[3].Cash.Add(e.ExpenseMiscCash)
		lines[3].Gpay = lines[3].Gpay.Add(e.ExpenseMiscGpay)
	}
	return lines
}

// CategoryTotal is revenue attributed to one item/service label.
type CategoryTotal struct {
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

// CategorySummary groups revenue by item label, highest first. PAN
// operations are reported as their own category since they carry no
// item label of their own.
func CategorySummary(entries []*models.DailyEntry) []CategoryTotal {
	byItem := make(map[string]decimal.Decimal)
	panOps := 0

	for _, e := range entries {
		item := e.Item
		if item == "" {
			item = "Miscellaneous"
		}
		amount := e.CreditedCash.Add(e.CreditedGpay).
			Add(e.ThirdpartyFeeCash).Add(e.ThirdpartyFeeGpay)
		byItem[item] = byItem[item].Add(amount)
		panOps += e.PanOperationCash + e.PanOperationGpay
	}

	if panOps > 0 {
		byItem["PAN Operations"] = byItem["PAN Operations"].Add(PanRevenuePerOp.Mul(decimal.NewFromInt(int64(panOps))))
	}

	totals := make([]CategoryTotal, 0, len(byItem))
	for item, amount := range byItem {
		totals = append(totals, CategoryTotal{Item: item, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Item < totals[j].Item
		}
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"akshaya-backend/internal/cache"
	"akshaya-backend/internal/ledger"
	"akshaya-backend/internal/metrics"
	"akshaya-backend/internal/models"
	"akshaya-backend/internal/repositories"
	"akshaya-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"
)

// DailyReport is the tally sheet for one IST calendar day, recomputed
// from that day's entries on every uncached read.
type DailyReport struct {
	Date       string                 `json:"date"`
	Summary    *ledger.DaySummary     `json:"summary"`
	Tally      ledger.TallyResult     `json:"tally"`
	Findings   []ledger.Finding       `json:"findings"`
	Expenses   []ledger.ExpenseLine   `json:"expenses"`
	Categories []ledger.CategoryTotal `json:"categories"`
	Entries    []*models.DailyEntry   `json:"entries"`
}

// DayRow is one day's line in a weekly or monthly report.
type DayRow struct {
	Date       string          `json:"date"`
	EntryCount int             `json:"entry_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetProfit  decimal.Decimal `json:"net_profit"`
}

// PeriodReport covers a week or month of trading.
type PeriodReport struct {
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Totals     ledger.PeriodTotals    `json:"totals"`
	Days       []DayRow               `json:"days"`
	Expenses   []ledger.ExpenseLine   `json:"expenses"`
	Categories []ledger.CategoryTotal `json:"categories"`
}

type ReportService struct {
	EntryRepo *repositories.EntryRepository
}

func NewReportService(entryRepo *repositories.EntryRepository) *ReportService {
	return &ReportService{EntryRepo: entryRepo}
}

const reportCacheTTL = 5 * time.Minute

// GetDailyReport builds the tally sheet for one date, serving from
// Redis when a cached copy exists.
func (s *ReportService) GetDailyReport(ctx context.Context, date time.Time) (*DailyReport, error) {
	dateStr := timeutil.FormatIST(date, timeutil.DateLayout)
	key := cache.DailyReportKey(dateStr)

	if data, ok := cache.GetCached(ctx, key); ok {
		var report DailyReport
		if err := json.Unmarshal(data, &report); err == nil {
			metrics.ReportCacheHits.WithLabelValues("hit").Inc()
			return &report, nil
		}
	}
	metrics.ReportCacheHits.WithLabelValues("miss").Inc()

	entries, err := s.EntryRepo.ListByDate(ctx, timeutil.StartOfDay(date))
	if err != nil {
		return nil, err
	}

	summary, findings := ledger.Summarize(entries)
	tally := ledger.VerifyTally(summary)
	if f := tally.Finding(); f != nil {
		findings = append(findings, *f)
		metrics.TallyMismatchesTotal.Inc()
	}

	report := &DailyReport{
		Date:       dateStr,
		Summary:    summary,
		Tally:      tally,
		Findings:   findings,
		Expenses:   ledger.ExpenseBreakdown(entries),
		Categories: ledger.CategorySummary(entries),
		Entries:    entries,
	}

	if data, err := json.Marshal(report); err == nil {
		cache.SetCached(ctx, key, data, reportCacheTTL)
	}
	return report, nil
}

// GetWeeklyReport covers the Monday-to-Sunday week containing anchor.
func (s *ReportService) GetWeeklyReport(ctx context.Context, anchor time.Time) (*PeriodReport, error) {
	from, to := timeutil.WeekRange(anchor)
	return s.getPeriodReport(ctx, from, to, cache.WeeklyReportKeyFmt)
}

// GetMonthlyReport covers anchor's calendar month.
func (s *ReportService) GetMonthlyReport(ctx context.Context, anchor time.Time) (*PeriodReport, error) {
	from, to := timeutil.MonthRange(anchor)
	return s.getPeriodReport(ctx, from, to, cache.MonthlyReportKeyFmt)
}

func (s *ReportService) getPeriodReport(ctx context.Context, from, to time.Time, keyFmt string) (*PeriodReport, error) {
	fromStr := timeutil.FormatIST(from, timeutil.DateLayout)
	key := fmt.Sprintf(keyFmt, fromStr)

	if data, ok := cache.GetCached(ctx, key); ok {
		var report PeriodReport
		if err := json.Unmarshal(data, &report); err == nil {
			metrics.ReportCacheHits.WithLabelValues("hit").Inc()
			return &report, nil
		}
	}
	metrics.ReportCacheHits.WithLabelValues("miss").Inc()

	entries, err := s.EntryRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &PeriodReport{
		From:       fromStr,
		To:         timeutil.FormatIST(to, timeutil.DateLayout),
		Totals:     ledger.Aggregate(entries),
		Days:       buildDayRows(entries),
		Expenses:   ledger.ExpenseBreakdown(entries),
		Categories: ledger.CategorySummary(entries),
	}

	if data, err := json.Marshal(report); err == nil {
		cache.SetCached(ctx, key, data, reportCacheTTL)
	}
	return report, nil
}

// buildDayRows groups entries by entry_date and aggregates each group.
// Input is already ordered by created_at, so dates come out in first
// appearance order, which is chronological.
func buildDayRows(entries []*models.DailyEntry) []DayRow {
	byDate := make(map[string][]*models.DailyEntry)
	var order []string
	for _, e := range entries {
		d := timeutil.FormatIST(e.EntryDate, timeutil.DateLayout)
		if _, seen := byDate[d]; !seen {
			order = append(order, d)
		}
		byDate[d] = append(byDate[d], e)
	}

	rows := make([]DayRow, 0, len(order))
	for _, d := range order {
		t := ledger.Aggregate(byDate[d])
		rows = append(rows, DayRow{
			Date:       d,
			EntryCount: t.EntryCount,
			Revenue:    t.Revenue,
			Expenses:   t.Expenses,
			NetProfit:  t.NetProfit,
		})
	}
	return rows
}

// GenerateDailyCSV renders the daily report as CSV: one row per entry
// plus a summary block.
func (s *ReportService) GenerateDailyCSV(ctx context.Context, date time.Time) ([]byte, error) {
	report, err := s.GetDailyReport(ctx, date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Daily Tally Sheet", report.Date})
	w.Write(nil)
	w.Write([]string{"ID", "Item", "Customer", "Credited Cash", "Credited GPay",
		"Deposit Cash", "Deposit GPay", "Expenses Cash", "Expenses GPay",
		"PAN Ops", "Thirdparty Fee", "Thirdparty Paid", "Recorded By", "Recorded At"})

	for _, e := range report.Entries {
		expCash := e.ExpenseSelfCash.Add(e.ExpenseStaffCash).Add(e.ExpenseEnterpriseCash).Add(e.ExpenseMiscCash)
		expGpay := e.ExpenseSelfGpay.Add(e.ExpenseStaffGpay).Add(e.ExpenseEnterpriseGpay).Add(e.ExpenseMiscGpay)
		w.Write([]string{
			fmt.Sprintf("%d", e.ID),
			e.Item,
			e.CustomerName,
			e.CreditedCash.StringFixed(2),
			e.CreditedGpay.StringFixed(2),
			e.DepositCash.StringFixed(2),
			e.DepositGpay.StringFixed(2),
			expCash.StringFixed(2),
			expGpay.StringFixed(2),
			fmt.Sprintf("%d", e.PanOperationCash+e.PanOperationGpay),
			e.ThirdpartyFeeCash.Add(e.ThirdpartyFeeGpay).StringFixed(2),
			e.ThirdpartyPaidCash.Add(e.ThirdpartyPaidGpay).StringFixed(2),
			e.CreatedByName,
			timeutil.FormatIST(e.CreatedAt, timeutil.DateTimeLayout),
		})
	}

	sum := report.Summary
	w.Write(nil)
	w.Write([]string{"Total Revenue", sum.TotalRevenue.StringFixed(2)})
	w.Write([]string{"Total Expenses", sum.TotalExpenses.StringFixed(2)})
	w.Write([]string{"Net Profit", sum.NetProfit.StringFixed(2)})
	w.Write([]string{"Cash In Hand", sum.CashInHand.StringFixed(2)})
	w.Write([]string{"Bank Balance", sum.BankBalance.StringFixed(2)})
	w.Write([]string{"Wallet Balance", sum.WalletBalance.StringFixed(2)})
	w.Write([]string{"PAN Wallet Balance", sum.PanWalletBalance.StringFixed(2)})
	tallied := "NO"
	if report.Tally.IsTallied {
		tallied = "YES"
	}
	w.Write([]string{"Tallied", tallied, "Diff", report.Tally.Diff.StringFixed(2)})

	w.Flush()
	return buf.Bytes(), w.Error()
}

// GenerateDailyPDF renders the daily tally sheet as a printable PDF.
func (s *ReportService) GenerateDailyPDF(ctx context.Context, date time.Time) ([]byte, error) {
	report, err := s.GetDailyReport(ctx, date)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Akshaya Centre - Daily Tally Sheet", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Date: %s    Generated: %s",
		report.Date, timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Entries table
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(12, 7, "ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Customer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Cash In", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "GPay In", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Deposited", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Expenses", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "PAN Ops", "1", 0, "C", true, 0, "")
	pdf.CellFormat(33, 7, "Recorded By", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, e := range report.Entries {
		item := e.Item
		if len(item) > 30 {
			item = item[:27] + "..."
		}
		customer := e.CustomerName
		if len(customer) > 24 {
			customer = customer[:21] + "..."
		}
		expenses := e.ExpenseSelfCash.Add(e.ExpenseSelfGpay).
			Add(e.ExpenseStaffCash).Add(e.ExpenseStaffGpay).
			Add(e.ExpenseEnterpriseCash).Add(e.ExpenseEnterpriseGpay).
			Add(e.ExpenseMiscCash).Add(e.ExpenseMiscGpay)

		pdf.CellFormat(12, 6, fmt.Sprintf("%d", e.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, customer, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, e.CreditedCash.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, e.CreditedGpay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, e.DepositCash.Add(e.DepositGpay).StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, expenses.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", e.PanOperationCash+e.PanOperationGpay), "1", 0, "C", false, 0, "")
		pdf.CellFormat(33, 6, e.CreatedByName, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Balance summary
	sum := report.Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(277, 8, "Balances", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(69, 8, fmt.Sprintf("Cash In Hand: Rs. %s", sum.CashInHand.StringFixed(2)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(69, 8, fmt.Sprintf("Bank: Rs. %s", sum.BankBalance.StringFixed(2)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(69, 8, fmt.Sprintf("Wallet: Rs. %s", sum.WalletBalance.StringFixed(2)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 8, fmt.Sprintf("PAN Wallet: Rs. %s", sum.PanWalletBalance.StringFixed(2)), "1", 1, "C", false, 0, "")

	pdf.CellFormat(92, 8, fmt.Sprintf("Revenue: Rs. %s", sum.TotalRevenue.StringFixed(2)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(92, 8, fmt.Sprintf("Expenses: Rs. %s", sum.TotalExpenses.StringFixed(2)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(93, 8, fmt.Sprintf("Net Profit: Rs. %s", sum.NetProfit.StringFixed(2)), "1", 1, "C", false, 0, "")

	// Tally banner
	if report.Tally.IsTallied {
		pdf.SetFillColor(200, 255, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(277, 10, "BOOKS TALLIED", "1", 1, "C", true, 0, "")
	} else {
		pdf.SetFillColor(255, 200, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(277, 10, fmt.Sprintf("TALLY MISMATCH: Rs. %s", report.Tally.Diff.StringFixed(2)), "1", 1, "C", true, 0, "")
	}

	// Findings
	if len(report.Findings) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(277, 7, "Findings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, f := range report.Findings {
			pdf.CellFormat(277, 6, fmt.Sprintf("[%s] %s", f.Code, f.Message), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

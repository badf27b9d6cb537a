package services

import (
	"testing"
	"time"

	"akshaya-backend/internal/models"
	"akshaya-backend/internal/timeutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dayEntry(t *testing.T, date string, credited string) *models.DailyEntry {
	t.Helper()
	d, err := timeutil.ParseInIST(timeutil.DateLayout, date)
	require.NoError(t, err)
	amount, err := decimal.NewFromString(credited)
	require.NoError(t, err)
	return &models.DailyEntry{
		EntryDate:    d,
		CreatedAt:    d.Add(10 * time.Hour),
		CreditedCash: amount,
	}
}

func TestBuildDayRowsGroupsByDateInOrder(t *testing.T) {
	entries := []*models.DailyEntry{
		dayEntry(t, "2025-03-03", "100"),
		dayEntry(t, "2025-03-03", "250"),
		dayEntry(t, "2025-03-04", "80"),
		dayEntry(t, "2025-03-06", "40"),
	}

	rows := buildDayRows(entries)

	require.Len(t, rows, 3)
	require.Equal(t, "2025-03-03", rows[0].Date)
	require.Equal(t, "2025-03-04", rows[1].Date)
	require.Equal(t, "2025-03-06", rows[2].Date)

	require.Equal(t, 2, rows[0].EntryCount)
	require.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(350)))
	require.True(t, rows[1].Revenue.Equal(decimal.NewFromInt(80)))
}

func TestBuildDayRowsEmpty(t *testing.T) {
	rows := buildDayRows(nil)
	require.Empty(t, rows)
}

func TestBuildDayRowsNetProfitMatchesRevenueMinusOutflows(t *testing.T) {
	e := dayEntry(t, "2025-03-03", "500")
	e.ExpenseStaffCash = decimal.NewFromInt(120)
	e.PortalGpay = decimal.NewFromInt(30)

	rows := buildDayRows([]*models.DailyEntry{e})

	require.Len(t, rows, 1)
	require.True(t, rows[0].NetProfit.Equal(decimal.NewFromInt(350)),
		"got %s", rows[0].NetProfit)
}

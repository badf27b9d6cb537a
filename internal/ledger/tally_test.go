package ledger

import (
	"testing"
	"time"

	"akshaya-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTallyBalancedDay(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedCash = dec("1000")
	e.ExpenseMiscCash = dec("200")

	s := ComputeSummary([]*models.DailyEntry{e}, OpeningBalances{})
	result := VerifyTally(s)

	assert.True(t, result.Expected.Equal(dec("800")))
	assert.True(t, result.Actual.Equal(dec("800")))
	assert.True(t, result.IsTallied)
	assert.Nil(t, result.Finding())
}

func TestVerifyTallyToleranceBoundary(t *testing.T) {
	cases := []struct {
		name    string
		cash    string
		tallied bool
	}{
		{"under tolerance", "800.005", true},
		{"exactly tolerance", "800.01", false},
		{"over tolerance", "800.02", false},
		{"under from below", "799.995", true},
		{"exactly tolerance below", "799.99", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &DaySummary{
				TotalRevenue:  dec("1000"),
				TotalExpenses: dec("200"),
				CashInHand:    dec(tc.cash),
			}
			result := VerifyTally(s)
			assert.Equal(t, tc.tallied, result.IsTallied, "diff %s", result.Diff)
		})
	}
}

func TestVerifyTallyMismatchFinding(t *testing.T) {
	s := &DaySummary{
		TotalRevenue: dec("500"),
		CashInHand:   dec("450"),
		BankBalance:  dec("20"),
	}

	result := VerifyTally(s)

	require.False(t, result.IsTallied)
	assert.True(t, result.Diff.Equal(dec("-30")))
	f := result.Finding()
	require.NotNil(t, f)
	assert.Equal(t, FindingToleranceExceeded, f.Code)
	assert.Contains(t, f.Message, "-30")
}

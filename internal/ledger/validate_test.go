package ledger

import (
	"testing"
	"time"

	"akshaya-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntryZeroEntryIsValid(t *testing.T) {
	assert.NoError(t, ValidateEntry(&models.DailyEntry{}))
}

func TestValidateEntryRejectsNegativeAmount(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedCash = dec("-5")

	err := ValidateEntry(e)

	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "credited_cash", inputErr.Field)
}

func TestValidateEntryRejectsNegativePanCount(t *testing.T) {
	e := entryAt(1, time.Now())
	e.PanOperationGpay = -1

	err := ValidateEntry(e)

	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "pan_operation_gpay", inputErr.Field)
}

func TestValidateEntryAcceptsPositiveValues(t *testing.T) {
	e := entryAt(1, time.Now())
	e.CreditedGpay = dec("100.50")
	e.DepositCash = dec("50")
	e.PanOperationCash = 2

	assert.NoError(t, ValidateEntry(e))
}

package ledger

import (
	"fmt"

	"akshaya-backend/internal/models"

	"github.com/shopspring/decimal"
)

// InputError marks an entry field that failed validation. Entries with
// input errors are rejected before they reach the calculator.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateEntry rejects entries the calculator cannot account for:
// negative amounts and negative operation counts. Absent fields are
// zero and always valid.
func ValidateEntry(e *models.DailyEntry) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"credited_cash", e.CreditedCash},
		{"credited_gpay", e.CreditedGpay},
		{"deposit_cash", e.DepositCash},
		{"deposit_gpay", e.DepositGpay},
		{"portal_gpay", e.PortalGpay},
		{"ed_wallet_gpay", e.EDWalletGpay},
		{"expense_self_cash", e.ExpenseSelfCash},
		{"expense_self_gpay", e.ExpenseSelfGpay},
		{"expense_staff_cash", e.ExpenseStaffCash},
		{"expense_staff_gpay", e.ExpenseStaffGpay},
		{"expense_enterprise_cash", e.ExpenseEnterpriseCash},
		{"expense_enterprise_gpay", e.ExpenseEnterpriseGpay},
		{"expense_misc_cash", e.ExpenseMiscCash},
		{"expense_misc_gpay", e.ExpenseMiscGpay},
		{"receive_cash", e.ReceiveCash},
		{"receive_gpay", e.ReceiveGpay},
		{"give_cash", e.GiveCash},
		{"give_gpay", e.GiveGpay},
		{"thirdparty_fee_cash", e.ThirdpartyFeeCash},
		{"thirdparty_fee_gpay", e.ThirdpartyFeeGpay},
		{"thirdparty_paid_cash", e.ThirdpartyPaidCash},
		{"thirdparty_paid_gpay", e.ThirdpartyPaidGpay},
		{"pan_wallet_topup", e.PanWalletTopup},
		{"opening_bank_balance", e.OpeningBankBalance},
		{"opening_cash_balance", e.OpeningCashBalance},
		{"opening_wallet_balance", e.OpeningWalletBalance},
		{"opening_pan_wallet", e.OpeningPanWallet},
	}

	for _, f := range fields {
		if f.value.IsNegative() {
			return &InputError{Field: f.name, Reason: "amount must not be negative"}
		}
	}

	if e.PanOperationCash < 0 {
		return &InputError{Field: "pan_operation_cash", Reason: "operation count must not be negative"}
	}
	if e.PanOperationGpay < 0 {
		return &InputError{Field: "pan_operation_gpay", Reason: "operation count must not be negative"}
	}

	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyEntry is one recorded business transaction. Every monetary
// column defaults to zero; opening_* balances are meaningful only on
// the first entry of a day and seed that day's running totals.
type DailyEntry struct {
	ID           int       `json:"id"`
	EntryDate    time.Time `json:"entry_date"`
	Item         string    `json:"item"`
	CustomerName string    `json:"customer_name"`

	CreditedCash decimal.Decimal `json:"credited_cash"`
	CreditedGpay decimal.Decimal `json:"credited_gpay"`
	DepositCash  decimal.Decimal `json:"deposit_cash"`
	DepositGpay  decimal.Decimal `json:"deposit_gpay"`

	// Payments made from the ED wallet and top-ups into it.
	PortalGpay   decimal.Decimal `json:"portal_gpay"`
	EDWalletGpay decimal.Decimal `json:"ed_wallet_gpay"`

	ExpenseSelfCash       decimal.Decimal `json:"expense_self_cash"`
	ExpenseSelfGpay       decimal.Decimal `json:"expense_self_gpay"`
	ExpenseStaffCash      decimal.Decimal `json:"expense_staff_cash"`
	ExpenseStaffGpay      decimal.Decimal `json:"expense_staff_gpay"`
	ExpenseEnterpriseCash decimal.Decimal `json:"expense_enterprise_cash"`
	ExpenseEnterpriseGpay decimal.Decimal `json:"expense_enterprise_gpay"`
	ExpenseMiscCash       decimal.Decimal `json:"expense_misc_cash"`
	ExpenseMiscGpay       decimal.Decimal `json:"expense_misc_gpay"`

	// Pending receivable/payable, tracked for the tally sheet only.
	ReceiveCash decimal.Decimal `json:"receive_cash"`
	ReceiveGpay decimal.Decimal `json:"receive_gpay"`
	GiveCash    decimal.Decimal `json:"give_cash"`
	GiveGpay    decimal.Decimal `json:"give_gpay"`

	// Third-party work: fee is the commission kept, paid is the
	// amount passed through to the third party.
	ThirdpartyFeeCash  decimal.Decimal `json:"thirdparty_fee_cash"`
	ThirdpartyFeeGpay  decimal.Decimal `json:"thirdparty_fee_gpay"`
	ThirdpartyPaidCash decimal.Decimal `json:"thirdparty_paid_cash"`
	ThirdpartyPaidGpay decimal.Decimal `json:"thirdparty_paid_gpay"`

	// PAN card operations: fixed-fee, counted per channel.
	PanOperationCash int             `json:"pan_operation_cash"`
	PanOperationGpay int             `json:"pan_operation_gpay"`
	PanWalletTopup   decimal.Decimal `json:"pan_wallet_topup"`

	OpeningBankBalance   decimal.Decimal `json:"opening_bank_balance"`
	OpeningCashBalance   decimal.Decimal `json:"opening_cash_balance"`
	OpeningWalletBalance decimal.Decimal `json:"opening_wallet_balance"`
	OpeningPanWallet     decimal.Decimal `json:"opening_pan_wallet"`

	CreatedByUserID int       `json:"created_by_user_id"`
	CreatedByName   string    `json:"created_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateEntryRequest mirrors the daily entry form: one amount per form
// section, tagged with the channel the operator picked.
type CreateEntryRequest struct {
	EntryDate    string `json:"entry_date"` // YYYY-MM-DD, defaults to today (IST)
	Item         string `json:"item"`
	CustomerName string `json:"customer_name"`

	Credited          ChannelAmount `json:"credited"`
	Deposit           ChannelAmount `json:"deposit"`
	ExpenseSelf       ChannelAmount `json:"expense_self"`
	ExpenseStaff      ChannelAmount `json:"expense_staff"`
	ExpenseEnterprise ChannelAmount `json:"expense_enterprise"`
	ExpenseMisc       ChannelAmount `json:"expense_misc"`
	Receive           ChannelAmount `json:"receive"`
	Give              ChannelAmount `json:"give"`
	ThirdpartyFee     ChannelAmount `json:"thirdparty_fee"`
	ThirdpartyPaid    ChannelAmount `json:"thirdparty_paid"`

	PortalGpay   decimal.Decimal `json:"portal_gpay"`
	EDWalletGpay decimal.Decimal `json:"ed_wallet_gpay"`

	PanOperationCash int             `json:"pan_operation_cash"`
	PanOperationGpay int             `json:"pan_operation_gpay"`
	PanWalletTopup   decimal.Decimal `json:"pan_wallet_topup"`

	OpeningBankBalance   decimal.Decimal `json:"opening_bank_balance"`
	OpeningCashBalance   decimal.Decimal `json:"opening_cash_balance"`
	OpeningWalletBalance decimal.Decimal `json:"opening_wallet_balance"`
	OpeningPanWallet     decimal.Decimal `json:"opening_pan_wallet"`
}

// UpdateEntryRequest carries field-level edits. Nil means "leave the
// column alone" so the history page can save a single changed cell.
type UpdateEntryRequest struct {
	Item         *string `json:"item,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
	EntryDate    *string `json:"entry_date,omitempty"`

	CreditedCash *decimal.Decimal `json:"credited_cash,omitempty"`
	CreditedGpay *decimal.Decimal `json:"credited_gpay,omitempty"`
	DepositCash  *decimal.Decimal `json:"deposit_cash,omitempty"`
	DepositGpay  *decimal.Decimal `json:"deposit_gpay,omitempty"`

	PortalGpay   *decimal.Decimal `json:"portal_gpay,omitempty"`
	EDWalletGpay *decimal.Decimal `json:"ed_wallet_gpay,omitempty"`

	ExpenseSelfCash       *decimal.Decimal `json:"expense_self_cash,omitempty"`
	ExpenseSelfGpay       *decimal.Decimal `json:"expense_self_gpay,omitempty"`
	ExpenseStaffCash      *decimal.Decimal `json:"expense_staff_cash,omitempty"`
	ExpenseStaffGpay      *decimal.Decimal `json:"expense_staff_gpay,omitempty"`
	ExpenseEnterpriseCash *decimal.Decimal `json:"expense_enterprise_cash,omitempty"`
	ExpenseEnterpriseGpay *decimal.Decimal `json:"expense_enterprise_gpay,omitempty"`
	ExpenseMiscCash       *decimal.Decimal `json:"expense_misc_cash,omitempty"`
	ExpenseMiscGpay       *decimal.Decimal `json:"expense_misc_gpay,omitempty"`

	ReceiveCash *decimal.Decimal `json:"receive_cash,omitempty"`
	ReceiveGpay *decimal.Decimal `json:"receive_gpay,omitempty"`
	GiveCash    *decimal.Decimal `json:"give_cash,omitempty"`
	GiveGpay    *decimal.Decimal `json:"give_gpay,omitempty"`

	ThirdpartyFeeCash  *decimal.Decimal `json:"thirdparty_fee_cash,omitempty"`
	ThirdpartyFeeGpay  *decimal.Decimal `json:"thirdparty_fee_gpay,omitempty"`
	ThirdpartyPaidCash *decimal.Decimal `json:"thirdparty_paid_cash,omitempty"`
	ThirdpartyPaidGpay *decimal.Decimal `json:"thirdparty_paid_gpay,omitempty"`

	PanOperationCash *int             `json:"pan_operation_cash,omitempty"`
	PanOperationGpay *int             `json:"pan_operation_gpay,omitempty"`
	PanWalletTopup   *decimal.Decimal `json:"pan_wallet_topup,omitempty"`

	OpeningBankBalance   *decimal.Decimal `json:"opening_bank_balance,omitempty"`
	OpeningCashBalance   *decimal.Decimal `json:"opening_cash_balance,omitempty"`
	OpeningWalletBalance *decimal.Decimal `json:"opening_wallet_balance,omitempty"`
	OpeningPanWallet     *decimal.Decimal `json:"opening_pan_wallet,omitempty"`
}

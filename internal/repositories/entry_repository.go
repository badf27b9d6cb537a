package repositories

import (
	"context"
	"time"

	"akshaya-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// entryColumns is the full select list for daily_entries, joined with
// the creator's name. Scan order must match scanEntry.
const entryColumns = `
	e.id, e.entry_date, e.item, e.customer_name,
	e.credited_cash, e.credited_gpay, e.deposit_cash, e.deposit_gpay,
	e.portal_gpay, e.ed_wallet_gpay,
	e.expense_self_cash, e.expense_self_gpay,
	e.expense_staff_cash, e.expense_staff_gpay,
	e.expense_enterprise_cash, e.expense_enterprise_gpay,
	e.expense_misc_cash, e.expense_misc_gpay,
	e.receive_cash, e.receive_gpay, e.give_cash, e.give_gpay,
	e.thirdparty_fee_cash, e.thirdparty_fee_gpay,
	e.thirdparty_paid_cash, e.thirdparty_paid_gpay,
	e.pan_operation_cash, e.pan_operation_gpay, e.pan_wallet_topup,
	e.opening_bank_balance, e.opening_cash_balance,
	e.opening_wallet_balance, e.opening_pan_wallet,
	COALESCE(e.created_by_user_id, 0), COALESCE(u.name, ''),
	e.created_at, e.updated_at`

func scanEntry(row pgx.Row) (*models.DailyEntry, error) {
	var e models.DailyEntry
	err := row.Scan(
		&e.ID, &e.EntryDate, &e.Item, &e.CustomerName,
		&e.CreditedCash, &e.CreditedGpay, &e.DepositCash, &e.DepositGpay,
		&e.PortalGpay, &e.EDWalletGpay,
		&e.ExpenseSelfCash, &e.ExpenseSelfGpay,
		&e.ExpenseStaffCash, &e.ExpenseStaffGpay,
		&e.ExpenseEnterpriseCash, &e.ExpenseEnterpriseGpay,
		&e.ExpenseMiscCash, &e.ExpenseMiscGpay,
		&e.ReceiveCash, &e.ReceiveGpay, &e.GiveCash, &e.GiveGpay,
		&e.ThirdpartyFeeCash, &e.ThirdpartyFeeGpay,
		&e.ThirdpartyPaidCash, &e.ThirdpartyPaidGpay,
		&e.PanOperationCash, &e.PanOperationGpay, &e.PanWalletTopup,
		&e.OpeningBankBalance, &e.OpeningCashBalance,
		&e.OpeningWalletBalance, &e.OpeningPanWallet,
		&e.CreatedByUserID, &e.CreatedByName,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type EntryRepository struct {
	DB *pgxpool.Pool
}

func NewEntryRepository(db *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{DB: db}
}

func (r *EntryRepository) Create(ctx context.Context, e *models.DailyEntry) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO daily_entries(
			entry_date, item, customer_name,
			credited_cash, credited_gpay, deposit_cash, deposit_gpay,
			portal_gpay, ed_wallet_gpay,
			expense_self_cash, expense_self_gpay,
			expense_staff_cash, expense_staff_gpay,
			expense_enterprise_cash, expense_enterprise_gpay,
			expense_misc_cash, expense_misc_gpay,
			receive_cash, receive_gpay, give_cash, give_gpay,
			thirdparty_fee_cash, thirdparty_fee_gpay,
			thirdparty_paid_cash, thirdparty_paid_gpay,
			pan_operation_cash, pan_operation_gpay, pan_wallet_topup,
			opening_bank_balance, opening_cash_balance,
			opening_wallet_balance, opening_pan_wallet,
			created_by_user_id
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24, $25,
			$26, $27, $28,
			$29, $30, $31, $32,
			$33
		)
		RETURNING id, created_at, updated_at`,
		e.EntryDate, e.Item, e.CustomerName,
		e.CreditedCash, e.CreditedGpay, e.DepositCash, e.DepositGpay,
		e.PortalGpay, e.EDWalletGpay,
		e.ExpenseSelfCash, e.ExpenseSelfGpay,
		e.ExpenseStaffCash, e.ExpenseStaffGpay,
		e.ExpenseEnterpriseCash, e.ExpenseEnterpriseGpay,
		e.ExpenseMiscCash, e.ExpenseMiscGpay,
		e.ReceiveCash, e.ReceiveGpay, e.GiveCash, e.GiveGpay,
		e.ThirdpartyFeeCash, e.ThirdpartyFeeGpay,
		e.ThirdpartyPaidCash, e.ThirdpartyPaidGpay,
		e.PanOperationCash, e.PanOperationGpay, e.PanWalletTopup,
		e.OpeningBankBalance, e.OpeningCashBalance,
		e.OpeningWalletBalance, e.OpeningPanWallet,
		e.CreatedByUserID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EntryRepository) Get(ctx context.Context, id int) (*models.DailyEntry, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM daily_entries e
		LEFT JOIN users u ON u.id = e.created_by_user_id
		WHERE e.id = $1`, id)
	return scanEntry(row)
}

// ListByDateRange returns entries with entry_date in [from, to],
// ordered by created_at with id as tie-break.
func (r *EntryRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.DailyEntry, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+entryColumns+`
		FROM daily_entries e
		LEFT JOIN users u ON u.id = e.created_by_user_id
		WHERE e.entry_date >= $1 AND e.entry_date <= $2
		ORDER BY e.created_at ASC, e.id ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.DailyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListByDate returns all entries for one calendar date.
func (r *EntryRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.DailyEntry, error) {
	return r.ListByDateRange(ctx, date, date)
}

// Update writes the full entry row back. Callers load the entry,
// apply field edits and pass the result here.
func (r *EntryRepository) Update(ctx context.Context, e *models.DailyEntry) error {
	return r.DB.QueryRow(ctx, `
		UPDATE daily_entries SET
			entry_date=$2, item=$3, customer_name=$4,
			credited_cash=$5, credited_gpay=$6, deposit_cash=$7, deposit_gpay=$8,
			portal_gpay=$9, ed_wallet_gpay=$10,
			expense_self_cash=$11, expense_self_gpay=$12,
			expense_staff_cash=$13, expense_staff_gpay=$14,
			expense_enterprise_cash=$15, expense_enterprise_gpay=$16,
			expense_misc_cash=$17, expense_misc_gpay=$18,
			receive_cash=$19, receive_gpay=$20, give_cash=$21, give_gpay=$22,
			thirdparty_fee_cash=$23, thirdparty_fee_gpay=$24,
			thirdparty_paid_cash=$25, thirdparty_paid_gpay=$26,
			pan_operation_cash=$27, pan_operation_gpay=$28, pan_wallet_topup=$29,
			opening_bank_balance=$30, opening_cash_balance=$31,
			opening_wallet_balance=$32, opening_pan_wallet=$33,
			updated_at=NOW()
		WHERE id=$1
		RETURNING updated_at`,
		e.ID,
		e.EntryDate, e.Item, e.CustomerName,
		e.CreditedCash, e.CreditedGpay, e.DepositCash, e.DepositGpay,
		e.PortalGpay, e.EDWalletGpay,
		e.ExpenseSelfCash, e.ExpenseSelfGpay,
		e.ExpenseStaffCash, e.ExpenseStaffGpay,
		e.ExpenseEnterpriseCash, e.ExpenseEnterpriseGpay,
		e.ExpenseMiscCash, e.ExpenseMiscGpay,
		e.ReceiveCash, e.ReceiveGpay, e.GiveCash, e.GiveGpay,
		e.ThirdpartyFeeCash, e.ThirdpartyFeeGpay,
		e.ThirdpartyPaidCash, e.ThirdpartyPaidGpay,
		e.PanOperationCash, e.PanOperationGpay, e.PanWalletTopup,
		e.OpeningBankBalance, e.OpeningCashBalance,
		e.OpeningWalletBalance, e.OpeningPanWallet,
	).Scan(&e.UpdatedAt)
}

func (r *EntryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM daily_entries WHERE id=$1`, id)
	return err
}

// Count returns the number of entries; used by health checks.
func (r *EntryRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM daily_entries`).Scan(&n)
	return n, err
}

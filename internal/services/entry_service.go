package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"akshaya-backend/internal/cache"
	"akshaya-backend/internal/ledger"
	"akshaya-backend/internal/metrics"
	"akshaya-backend/internal/models"
	"akshaya-backend/internal/repositories"
	"akshaya-backend/internal/timeutil"

	"github.com/shopspring/decimal"
)

type EntryService struct {
	EntryRepo   *repositories.EntryRepository
	EditLogRepo *repositories.EntryEditLogRepository
}

func NewEntryService(entryRepo *repositories.EntryRepository, editLogRepo *repositories.EntryEditLogRepository) *EntryService {
	return &EntryService{
		EntryRepo:   entryRepo,
		EditLogRepo: editLogRepo,
	}
}

// CreateEntry routes each form section's amount to its cash or gpay
// column, validates the result and stores it.
func (s *EntryService) CreateEntry(ctx context.Context, req *models.CreateEntryRequest, userID int) (*models.DailyEntry, error) {
	entryDate := timeutil.StartOfDay(timeutil.Now())
	if req.EntryDate != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, req.EntryDate)
		if err != nil {
			return nil, errors.New("entry_date must be YYYY-MM-DD")
		}
		entryDate = parsed
	}

	e := &models.DailyEntry{
		EntryDate:        entryDate,
		Item:             req.Item,
		CustomerName:     req.CustomerName,
		PortalGpay:       req.PortalGpay,
		EDWalletGpay:     req.EDWalletGpay,
		PanOperationCash: req.PanOperationCash,
		PanOperationGpay: req.PanOperationGpay,
		PanWalletTopup:   req.PanWalletTopup,

		OpeningBankBalance:   req.OpeningBankBalance,
		OpeningCashBalance:   req.OpeningCashBalance,
		OpeningWalletBalance: req.OpeningWalletBalance,
		OpeningPanWallet:     req.OpeningPanWallet,

		CreatedByUserID: userID,
	}

	sections := []struct {
		name string
		amt  models.ChannelAmount
		cash *decimal.Decimal
		gpay *decimal.Decimal
	}{
		{"credited", req.Credited, &e.CreditedCash, &e.CreditedGpay},
		{"deposit", req.Deposit, &e.DepositCash, &e.DepositGpay},
		{"expense_self", req.ExpenseSelf, &e.ExpenseSelfCash, &e.ExpenseSelfGpay},
		{"expense_staff", req.ExpenseStaff, &e.ExpenseStaffCash, &e.ExpenseStaffGpay},
		{"expense_enterprise", req.ExpenseEnterprise, &e.ExpenseEnterpriseCash, &e.ExpenseEnterpriseGpay},
		{"expense_misc", req.ExpenseMisc, &e.ExpenseMiscCash, &e.ExpenseMiscGpay},
		{"receive", req.Receive, &e.ReceiveCash, &e.ReceiveGpay},
		{"give", req.Give, &e.GiveCash, &e.GiveGpay},
		{"thirdparty_fee", req.ThirdpartyFee, &e.ThirdpartyFeeCash, &e.ThirdpartyFeeGpay},
		{"thirdparty_paid", req.ThirdpartyPaid, &e.ThirdpartyPaidCash, &e.ThirdpartyPaidGpay},
	}
	for _, sec := range sections {
		if err := sec.amt.Route(sec.cash, sec.gpay); err != nil {
			return nil, fmt.Errorf("%s: %w", sec.name, err)
		}
	}

	if err := ledger.ValidateEntry(e); err != nil {
		return nil, err
	}

	if err := s.EntryRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	metrics.EntriesCreatedTotal.Inc()
	cache.InvalidateEntryCaches(ctx)
	return e, nil
}

func (s *EntryService) GetEntry(ctx context.Context, id int) (*models.DailyEntry, error) {
	return s.EntryRepo.Get(ctx, id)
}

// ListEntries returns entries for an inclusive IST date range.
func (s *EntryService) ListEntries(ctx context.Context, from, to time.Time) ([]*models.DailyEntry, error) {
	return s.EntryRepo.ListByDateRange(ctx, from, to)
}

// UpdateEntry applies the non-nil fields of req to the stored entry,
// writes one edit-log row per changed field and saves the result.
func (s *EntryService) UpdateEntry(ctx context.Context, id int, req *models.UpdateEntryRequest, userID int) (*models.DailyEntry, error) {
	e, err := s.EntryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var logs []*models.EntryEditLog
	record := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		logs = append(logs, &models.EntryEditLog{
			EntryID:        id,
			Field:          field,
			OldValue:       oldVal,
			NewValue:       newVal,
			EditedByUserID: userID,
		})
	}

	if req.Item != nil {
		record("item", e.Item, *req.Item)
		e.Item = *req.Item
	}
	if req.CustomerName != nil {
		record("customer_name", e.CustomerName, *req.CustomerName)
		e.CustomerName = *req.CustomerName
	}
	if req.EntryDate != nil {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, *req.EntryDate)
		if err != nil {
			return nil, errors.New("entry_date must be YYYY-MM-DD")
		}
		record("entry_date", e.EntryDate.Format(timeutil.DateLayout), *req.EntryDate)
		e.EntryDate = parsed
	}

	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
		src  *decimal.Decimal
	}{
		{"credited_cash", &e.CreditedCash, req.CreditedCash},
		{"credited_gpay", &e.CreditedGpay, req.CreditedGpay},
		{"deposit_cash", &e.DepositCash, req.DepositCash},
		{"deposit_gpay", &e.DepositGpay, req.DepositGpay},
		{"portal_gpay", &e.PortalGpay, req.PortalGpay},
		{"ed_wallet_gpay", &e.EDWalletGpay, req.EDWalletGpay},
		{"expense_self_cash", &e.ExpenseSelfCash, req.ExpenseSelfCash},
		{"expense_self_gpay", &e.ExpenseSelfGpay, req.ExpenseSelfGpay},
		{"expense_staff_cash", &e.ExpenseStaffCash, req.ExpenseStaffCash},
		{"expense_staff_gpay", &e.ExpenseStaffGpay, req.ExpenseStaffGpay},
		{"expense_enterprise_cash", &e.ExpenseEnterpriseCash, req.ExpenseEnterpriseCash},
		{"expense_enterprise_gpay", &e.ExpenseEnterpriseGpay, req.ExpenseEnterpriseGpay},
		{"expense_misc_cash", &e.ExpenseMiscCash, req.ExpenseMiscCash},
		{"expense_misc_gpay", &e.ExpenseMiscGpay, req.ExpenseMiscGpay},
		{"receive_cash", &e.ReceiveCash, req.ReceiveCash},
		{"receive_gpay", &e.ReceiveGpay, req.ReceiveGpay},
		{"give_cash", &e.GiveCash, req.GiveCash},
		{"give_gpay", &e.GiveGpay, req.GiveGpay},
		{"thirdparty_fee_cash", &e.ThirdpartyFeeCash, req.ThirdpartyFeeCash},
		{"thirdparty_fee_gpay", &e.ThirdpartyFeeGpay, req.ThirdpartyFeeGpay},
		{"thirdparty_paid_cash", &e.ThirdpartyPaidCash, req.ThirdpartyPaidCash},
		{"thirdparty_paid_gpay", &e.ThirdpartyPaidGpay, req.ThirdpartyPaidGpay},
		{"pan_wallet_topup", &e.PanWalletTopup, req.PanWalletTopup},
		{"opening_bank_balance", &e.OpeningBankBalance, req.OpeningBankBalance},
		{"opening_cash_balance", &e.OpeningCashBalance, req.OpeningCashBalance},
		{"opening_wallet_balance", &e.OpeningWalletBalance, req.OpeningWalletBalance},
		{"opening_pan_wallet", &e.OpeningPanWallet, req.OpeningPanWallet},
	} {
		if f.src == nil {
			continue
		}
		record(f.name, f.dst.String(), f.src.String())
		*f.dst = *f.src
	}

	for _, f := range []struct {
		name string
		dst  *int
		src  *int
	}{
		{"pan_operation_cash", &e.PanOperationCash, req.PanOperationCash},
		{"pan_operation_gpay", &e.PanOperationGpay, req.PanOperationGpay},
	} {
		if f.src == nil {
			continue
		}
		record(f.name, fmt.Sprintf("%d", *f.dst), fmt.Sprintf("%d", *f.src))
		*f.dst = *f.src
	}

	if err := ledger.ValidateEntry(e); err != nil {
		return nil, err
	}

	if err := s.EntryRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	if err := s.EditLogRepo.CreateBatch(ctx, logs); err != nil {
		return nil, err
	}

	cache.InvalidateEntryCaches(ctx)
	return e, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id int) error {
	if err := s.EntryRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateEntryCaches(ctx)
	return nil
}

// GetEditLogs returns the field-level edit history of one entry.
func (s *EntryService) GetEditLogs(ctx context.Context, entryID int) ([]*models.EntryEditLog, error) {
	return s.EditLogRepo.ListByEntry(ctx, entryID)
}

// ListRecentEditLogs returns the latest edits across all entries.
func (s *EntryService) ListRecentEditLogs(ctx context.Context, limit int) ([]*models.EntryEditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.EditLogRepo.ListRecent(ctx, limit)
}

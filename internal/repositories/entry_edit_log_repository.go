package repositories

import (
	"context"

	"akshaya-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EntryEditLogRepository struct {
	DB *pgxpool.Pool
}

func NewEntryEditLogRepository(db *pgxpool.Pool) *EntryEditLogRepository {
	return &EntryEditLogRepository{DB: db}
}

// CreateBatch records one row per edited field in a single round trip.
func (r *EntryEditLogRepository) CreateBatch(ctx context.Context, logs []*models.EntryEditLog) error {
	if len(logs) == 0 {
		return nil
	}

	batch := make([][]interface{}, 0, len(logs))
	for _, l := range logs {
		batch = append(batch, []interface{}{l.EntryID, l.Field, l.OldValue, l.NewValue, l.EditedByUserID})
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, args := range batch {
		if _, err := tx.Exec(ctx, `
			INSERT INTO entry_edit_logs(entry_id, field, old_value, new_value, edited_by_user_id)
			VALUES($1, $2, $3, $4, $5)`, args...); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ListRecent returns the latest edit-log rows across all entries,
// newest first. Backs the admin audit page.
func (r *EntryEditLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.EntryEditLog, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT l.id, l.entry_id, l.field, l.old_value, l.new_value,
		       COALESCE(l.edited_by_user_id, 0), COALESCE(u.name, ''), l.edited_at
		FROM entry_edit_logs l
		LEFT JOIN users u ON u.id = l.edited_by_user_id
		ORDER BY l.edited_at DESC, l.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.EntryEditLog
	for rows.Next() {
		var l models.EntryEditLog
		if err := rows.Scan(&l.ID, &l.EntryID, &l.Field, &l.OldValue, &l.NewValue,
			&l.EditedByUserID, &l.EditedByName, &l.EditedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// ListByEntry returns an entry's edit history, newest first.
func (r *EntryEditLogRepository) ListByEntry(ctx context.Context, entryID int) ([]*models.EntryEditLog, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT l.id, l.entry_id, l.field, l.old_value, l.new_value,
		       COALESCE(l.edited_by_user_id, 0), COALESCE(u.name, ''), l.edited_at
		FROM entry_edit_logs l
		LEFT JOIN users u ON u.id = l.edited_by_user_id
		WHERE l.entry_id = $1
		ORDER BY l.edited_at DESC, l.id DESC`, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.EntryEditLog
	for rows.Next() {
		var l models.EntryEditLog
		if err := rows.Scan(&l.ID, &l.EntryID, &l.Field, &l.OldValue, &l.NewValue,
			&l.EditedByUserID, &l.EditedByName, &l.EditedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

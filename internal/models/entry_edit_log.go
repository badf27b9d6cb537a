package models

import "time"

// EntryEditLog records one changed field of a daily entry. An edit
// that touches several fields produces several rows sharing the same
// entry_id and timestamp.
type EntryEditLog struct {
	ID             int       `json:"id"`
	EntryID        int       `json:"entry_id"`
	Field          string    `json:"field"` // column name, e.g. "credited_cash"
	OldValue       string    `json:"old_value"`
	NewValue       string    `json:"new_value"`
	EditedByUserID int       `json:"edited_by_user_id"`
	EditedByName   string    `json:"edited_by_name,omitempty"`
	EditedAt       time.Time `json:"edited_at"`
}

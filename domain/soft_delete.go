package domain

import "time"

// DeleteState tags a row as active or soft-deleted right after it leaves
// storage, so masking logic never deals with a nullable column. Once a row
// is soft-deleted it never becomes active again.
type DeleteState struct {
	deletedAt time.Time
	deleted   bool
}

// ActiveState returns the state of a row that was never soft-deleted.
func ActiveState() DeleteState {
	return DeleteState{}
}

// DeletedState returns the state of a row soft-deleted at t.
func DeletedState(t time.Time) DeleteState {
	return DeleteState{deletedAt: t, deleted: true}
}

// DeleteStateFromColumn maps a nullable is_delete column to a DeleteState.
func DeleteStateFromColumn(t *time.Time) DeleteState {
	if t == nil {
		return ActiveState()
	}
	return DeletedState(*t)
}

func (s DeleteState) Deleted() bool {
	return s.deleted
}

// Timestamp returns the soft-delete time; ok is false for active rows.
func (s DeleteState) Timestamp() (t time.Time, ok bool) {
	return s.deletedAt, s.deleted
}

package domain

import (
	"context"
	"time"
)

// detailTimeLayout is the wire format for every date in the detail view.
const detailTimeLayout = time.RFC3339

// NewThread is the validated payload for creating a thread.
type NewThread struct {
	Title string
	Body  string
}

// NewThreadFromPayload validates the raw request payload and builds a NewThread.
func NewThreadFromPayload(payload Payload) (NewThread, error) {
	values, err := requireStrings(payload, EntityNewThread, "title", "body")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: values[0], Body: values[1]}, nil
}

// AddedThread is the persistence acknowledgement for a created thread.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return AddedThread{}, ValidationError{EntityAddedThread, MissingProperty}
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// ThreadRecord is the flat joined row a ThreadRepository returns.
// Username is already resolved from the owner reference; repositories
// substitute DeletedUserMask when the owner row was removed.
type ThreadRecord struct {
	ID        string
	Title     string
	Body      string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ThreadDetail is the read-only projection of a thread with its comment tree.
// It is built fresh per fetch and never cached.
type ThreadDetail struct {
	ID        string
	Title     string
	Body      string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Comments  []FormattedComment
}

// NewThreadDetail validates the aggregated thread payload. Comments must be a
// materialized (possibly empty, never nil) list of formatted comments.
func NewThreadDetail(record ThreadRecord, comments []FormattedComment) (ThreadDetail, error) {
	if record.ID == "" || record.Title == "" || record.Body == "" || record.Username == "" ||
		record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() || comments == nil {
		return ThreadDetail{}, ValidationError{EntityThreadDetail, MissingProperty}
	}
	return ThreadDetail{
		ID:        record.ID,
		Title:     record.Title,
		Body:      record.Body,
		Username:  record.Username,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		Comments:  comments,
	}, nil
}

// FormattedThread is the public-facing shape of a thread detail.
type FormattedThread struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Body     string             `json:"body"`
	Date     string             `json:"date"`
	Username string             `json:"username"`
	Comments []FormattedComment `json:"comments"`
}

// Format projects the detail into its public shape. Threads are never
// soft-deleted, so nothing is masked here.
func (d ThreadDetail) Format() FormattedThread {
	return FormattedThread{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		Date:     d.CreatedAt.Format(detailTimeLayout),
		Username: d.Username,
		Comments: d.Comments,
	}
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// Create stores a new thread owned by ownerID and returns the acknowledgement.
	Create(ctx context.Context, ownerID string, thread NewThread) (AddedThread, error)

	// FetchByID retrieves the flat thread row with its owner username resolved.
	// Returns ErrNotFound if the thread doesn't exist.
	FetchByID(ctx context.Context, id string) (ThreadRecord, error)

	// CheckAvailability returns ErrNotFound if the thread doesn't exist.
	CheckAvailability(ctx context.Context, id string) error
}

// ThreadUsecase defines the business logic contract for thread operations.
type ThreadUsecase interface {
	Create(ctx context.Context, userID string, payload Payload) (AddedThread, error)

	// GetDetail assembles the full nested, soft-delete-aware thread view.
	GetDetail(ctx context.Context, threadID string) (FormattedThread, error)
}

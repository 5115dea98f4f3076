package domain

import (
	"context"
	"time"
)

// DeletedReplyMask replaces the content of a soft-deleted reply in the
// detail view.
const DeletedReplyMask = "**balasan telah dihapus**"

// NewReply is the validated payload for replying to a comment.
type NewReply struct {
	Content string
}

func NewReplyFromPayload(payload Payload) (NewReply, error) {
	values, err := requireStrings(payload, EntityNewReply, "content")
	if err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: values[0]}, nil
}

// AddedReply is the persistence acknowledgement for a created reply.
type AddedReply struct {
	ID      string
	Content string
	Owner   string
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return AddedReply{}, ValidationError{EntityAddedReply, MissingProperty}
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// ReplyRecord is the flat joined row a ReplyRepository returns, ascending by
// creation time. CommentID carries the parent reference for grouping.
type ReplyRecord struct {
	ID        string
	CommentID string
	Username  string
	Content   string
	Deleted   DeleteState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReplyDetail is the read-only projection of a single reply.
type ReplyDetail struct {
	ID        string
	Username  string
	Content   string
	Deleted   DeleteState
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReplyDetail(record ReplyRecord) (ReplyDetail, error) {
	if record.ID == "" || record.Username == "" || record.Content == "" ||
		record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		return ReplyDetail{}, ValidationError{EntityReplyDetail, MissingProperty}
	}
	return ReplyDetail{
		ID:        record.ID,
		Username:  record.Username,
		Content:   record.Content,
		Deleted:   record.Deleted,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// FormattedReply is the public-facing shape of a reply in the detail view.
type FormattedReply struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

// Format projects the detail into its public shape, masking the content of a
// soft-deleted reply. The date stays created_at regardless of delete state.
func (d ReplyDetail) Format() FormattedReply {
	content := d.Content
	if d.Deleted.Deleted() {
		content = DeletedReplyMask
	}
	return FormattedReply{
		ID:       d.ID,
		Username: d.Username,
		Content:  content,
		Date:     d.CreatedAt.Format(detailTimeLayout),
	}
}

// ReplyPath addresses a reply inside a comment inside a thread.
type ReplyPath struct {
	ThreadID  string
	CommentID string
	ReplyID   string
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	Create(ctx context.Context, ownerID, commentID string, reply NewReply) (AddedReply, error)

	// FetchByCommentID retrieves every reply of the comment, ascending by
	// creation time.
	FetchByCommentID(ctx context.Context, commentID string) ([]ReplyRecord, error)

	// FetchByThreadID retrieves every reply under the thread's comments,
	// excluding replies whose parent comment is soft-deleted, ascending by
	// creation time.
	FetchByThreadID(ctx context.Context, threadID string) ([]ReplyRecord, error)

	// DeleteByID marks the reply soft-deleted. The row stays in storage.
	DeleteByID(ctx context.Context, id string) error

	// CheckAvailability returns ErrNotFound when the reply doesn't exist,
	// is soft-deleted, or doesn't belong to the given comment.
	CheckAvailability(ctx context.Context, commentID, replyID string) error

	// VerifyOwnership returns ErrForbidden when ownerID isn't the stored owner.
	VerifyOwnership(ctx context.Context, id, ownerID string) error
}

// ReplyUsecase defines the business logic contract for reply operations.
type ReplyUsecase interface {
	Create(ctx context.Context, userID string, path CommentPath, payload Payload) (AddedReply, error)
	Delete(ctx context.Context, userID string, path ReplyPath) error
}

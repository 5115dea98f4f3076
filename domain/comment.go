package domain

import (
	"context"
	"time"
)

// DeletedCommentMask replaces the content of a soft-deleted comment in the
// detail view.
const DeletedCommentMask = "**komentar telah dihapus**"

// NewComment is the validated payload for commenting on a thread.
type NewComment struct {
	Content string
}

func NewCommentFromPayload(payload Payload) (NewComment, error) {
	values, err := requireStrings(payload, EntityNewComment, "content")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: values[0]}, nil
}

// AddedComment is the persistence acknowledgement for a created comment.
type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return AddedComment{}, ValidationError{EntityAddedComment, MissingProperty}
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// CommentRecord is the flat joined row a CommentRepository returns,
// ordered ascending by creation time.
type CommentRecord struct {
	ID        string
	Username  string
	Content   string
	Deleted   DeleteState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentDetail is the read-only projection of a comment with its computed
// like count and formatted replies.
type CommentDetail struct {
	ID        string
	Username  string
	Content   string
	Deleted   DeleteState
	CreatedAt time.Time
	UpdatedAt time.Time
	LikeCount int
	Replies   []FormattedReply
}

// NewCommentDetail validates the aggregated comment payload. Replies must be
// materialized (possibly empty, never nil) and the like count non-negative.
func NewCommentDetail(record CommentRecord, likeCount int, replies []FormattedReply) (CommentDetail, error) {
	if record.ID == "" || record.Username == "" || record.Content == "" ||
		record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() || replies == nil {
		return CommentDetail{}, ValidationError{EntityCommentDetail, MissingProperty}
	}
	if likeCount < 0 {
		return CommentDetail{}, ValidationError{EntityCommentDetail, WrongDataType}
	}
	return CommentDetail{
		ID:        record.ID,
		Username:  record.Username,
		Content:   record.Content,
		Deleted:   record.Deleted,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		LikeCount: likeCount,
		Replies:   replies,
	}, nil
}

// FormattedComment is the public-facing shape of a comment in the detail view.
type FormattedComment struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Content   string           `json:"content"`
	Date      string           `json:"date"`
	LikeCount int              `json:"likeCount"`
	Replies   []FormattedReply `json:"replies"`
}

// Format projects the detail into its public shape, masking the content of a
// soft-deleted comment. The date stays created_at regardless of delete state.
func (d CommentDetail) Format() FormattedComment {
	content := d.Content
	if d.Deleted.Deleted() {
		content = DeletedCommentMask
	}
	return FormattedComment{
		ID:        d.ID,
		Username:  d.Username,
		Content:   content,
		Date:      d.CreatedAt.Format(detailTimeLayout),
		LikeCount: d.LikeCount,
		Replies:   d.Replies,
	}
}

// CommentPath addresses a comment inside a thread.
type CommentPath struct {
	ThreadID  string
	CommentID string
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, ownerID, threadID string, comment NewComment) (AddedComment, error)

	// FetchByThreadID retrieves every comment of the thread, soft-deleted ones
	// included, ascending by creation time.
	FetchByThreadID(ctx context.Context, threadID string) ([]CommentRecord, error)

	// DeleteByID marks the comment soft-deleted. The row stays in storage.
	DeleteByID(ctx context.Context, id string) error

	// CheckAvailability returns ErrNotFound when the comment doesn't exist,
	// is soft-deleted, or doesn't belong to the given thread.
	CheckAvailability(ctx context.Context, threadID, commentID string) error

	// VerifyOwnership returns ErrForbidden when ownerID isn't the stored owner.
	VerifyOwnership(ctx context.Context, id, ownerID string) error
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	Create(ctx context.Context, userID, threadID string, payload Payload) (AddedComment, error)
	Delete(ctx context.Context, userID string, path CommentPath) error

	// ToggleLike likes the comment when userID has no like on it yet and
	// unlikes it otherwise.
	ToggleLike(ctx context.Context, userID string, path CommentPath) error
}

package domain

import "context"

// Like represents one user's like on one comment. The row's existence is the
// whole semantic: absence means unliked, and (owner, comment) is unique.
type Like struct {
	Owner     string
	CommentID string
}

func NewLike(owner, commentID string) (Like, error) {
	if owner == "" || commentID == "" {
		return Like{}, ValidationError{EntityLike, MissingProperty}
	}
	return Like{Owner: owner, CommentID: commentID}, nil
}

// LikeRecord is the flat like row as stored.
type LikeRecord struct {
	ID        string
	Owner     string
	CommentID string
}

// CommentLikeRepository defines the contract for like persistence.
type CommentLikeRepository interface {
	// Create inserts the like row. Returns ErrConflict when the unique
	// (owner, comment_id) constraint rejects a duplicate.
	Create(ctx context.Context, like Like) error

	// Delete removes the like row if it exists.
	Delete(ctx context.Context, like Like) error

	// IsLiked reports whether the like row exists.
	IsLiked(ctx context.Context, like Like) (bool, error)

	// FetchByThreadID retrieves every like row whose comment belongs to the
	// thread, soft-deleted comments included.
	FetchByThreadID(ctx context.Context, threadID string) ([]LikeRecord, error)
}

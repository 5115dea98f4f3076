package model

// CommentLike is the comments_likes table row. The unique index carries the
// one-like-per-user-per-comment invariant; the storage engine rejects the
// loser of a concurrent double insert.
type CommentLike struct {
	ID        string  `gorm:"primaryKey;size:50"`
	Owner     *string `gorm:"size:50;uniqueIndex:uniq_owner_comment"`
	CommentID *string `gorm:"column:comment_id;size:50;uniqueIndex:uniq_owner_comment"`
}

func (CommentLike) TableName() string {
	return "comments_likes"
}

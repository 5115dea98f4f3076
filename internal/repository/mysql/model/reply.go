package model

import "time"

// Reply is the replies table row, soft-deleted the same way comments are.
type Reply struct {
	ID        string     `gorm:"primaryKey;size:50"`
	Content   string     `gorm:"type:text;not null"`
	Owner     *string    `gorm:"size:50;index"`
	CommentID *string    `gorm:"column:comment_id;size:50;index"`
	IsDelete  *time.Time `gorm:"column:is_delete"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Reply) TableName() string {
	return "replies"
}

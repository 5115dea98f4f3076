package model

import "time"

// Comment is the comments table row. IsDelete is the soft-delete marker:
// null means active, a timestamp means deleted for good.
type Comment struct {
	ID        string     `gorm:"primaryKey;size:50"`
	Content   string     `gorm:"type:text;not null"`
	Owner     *string    `gorm:"size:50;index"`
	ThreadID  *string    `gorm:"column:thread_id;size:50;index"`
	IsDelete  *time.Time `gorm:"column:is_delete"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}

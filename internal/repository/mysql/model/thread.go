package model

import "time"

// Thread is the threads table row. Owner is nullable so removing a user
// leaves the thread behind with a dangling reference (ON DELETE SET NULL).
type Thread struct {
	ID        string  `gorm:"primaryKey;size:50"`
	Title     string  `gorm:"type:text;not null"`
	Body      string  `gorm:"type:text;not null"`
	Owner     *string `gorm:"size:50;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Thread) TableName() string {
	return "threads"
}

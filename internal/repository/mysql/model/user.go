package model

import "time"

// User is the users table row. Password holds the bcrypt hash.
type User struct {
	ID        string `gorm:"primaryKey;size:50"`
	Username  string `gorm:"size:50;uniqueIndex;not null"`
	Password  string `gorm:"type:text;not null"`
	Fullname  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

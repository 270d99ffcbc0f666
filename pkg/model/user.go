package model

import "time"

// User is an account that can sign in to the application.
type User struct {
	ID                 uint      `gorm:"column:id;primaryKey"`
	Username           string    `gorm:"column:username;not null"`
	NormalizedUsername string    `gorm:"column:normalized_username;not null;uniqueIndex"`
	PasswordHash       []byte    `gorm:"column:password_hash;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

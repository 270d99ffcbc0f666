package model

import "time"

// Role is a named authorization group, e.g. "Admin".
type Role struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	NormalizedName string    `gorm:"column:normalized_name;not null;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Role) TableName() string {
	return "roles"
}

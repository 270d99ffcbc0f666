package model

// UserRole links a user to a role. A link only exists while both the
// referenced user and role exist; the schema enforces this with
// ON DELETE CASCADE foreign keys.
type UserRole struct {
	UserID uint `gorm:"column:user_id;primaryKey"`
	RoleID uint `gorm:"column:role_id;primaryKey"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

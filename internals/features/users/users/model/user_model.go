package model

import "time"

// UserModel is a course registrant. Admins live in their own table.
type UserModel struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	FullName  string    `gorm:"column:full_name;type:varchar(160);not null"`
	Email     *string   `gorm:"column:email;type:varchar(160);uniqueIndex"`
	Phone     *string   `gorm:"column:phone;type:varchar(40);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

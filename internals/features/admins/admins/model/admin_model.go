package model

import "time"

type AdminModel struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;type:varchar(160);uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name;type:varchar(160);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(256);not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AdminModel) TableName() string {
	return "admin"
}

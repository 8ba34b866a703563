package model

import "time"

type InstructorModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	FullName  string    `gorm:"column:full_name;type:varchar(120);not null" json:"full_name"`
	Phone     *string   `gorm:"column:phone;type:varchar(40);uniqueIndex" json:"phone"`
	Email     *string   `gorm:"column:email;type:varchar(160);uniqueIndex" json:"email"`
	Bio       *string   `gorm:"column:bio;type:text" json:"bio"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}

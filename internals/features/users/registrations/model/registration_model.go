package model

import (
	"time"

	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	userModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
)

// RegistrationModel links a user to a course. (course_id, user_id) is unique.
type RegistrationModel struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	CourseID    uint      `gorm:"column:course_id;not null;uniqueIndex:uq_registration_course_user"`
	UserID      uint      `gorm:"column:user_id;not null;uniqueIndex:uq_registration_course_user"`
	StatusID    uint      `gorm:"column:status_id;not null"`
	SubmittedAt time.Time `gorm:"column:submitted_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Status lookupModel.RegistrationStatus `gorm:"foreignKey:StatusID;references:ID"`
	User   userModel.UserModel            `gorm:"foreignKey:UserID;references:ID"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}

package model

import (
	"time"

	"gorm.io/datatypes"

	instructorModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	venueModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
)

// CourseModel maps courses. Registrations and course_instructors rows go
// away with the course through ON DELETE CASCADE.
type CourseModel struct {
	ID                     uint            `gorm:"column:id;primaryKey"`
	Title                  string          `gorm:"column:title;type:varchar(160);not null"`
	Description            *string         `gorm:"column:description;type:text"`
	DeliveryModeID         uint            `gorm:"column:delivery_mode_id;not null"`
	VenueID                *uint           `gorm:"column:venue_id"`
	Capacity               *int            `gorm:"column:capacity"`
	SessionCounts          *int            `gorm:"column:session_counts"`
	SessionDurationMinutes *int            `gorm:"column:session_duration_minutes"`
	StartDate              *datatypes.Date `gorm:"column:start_date;type:date"`
	EndDate                *datatypes.Date `gorm:"column:end_date;type:date"`
	CreatedAt              time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time       `gorm:"column:updated_at;autoUpdateTime"`

	DeliveryMode lookupModel.DeliveryMode          `gorm:"foreignKey:DeliveryModeID"`
	Venue        *venueModel.VenueModel            `gorm:"foreignKey:VenueID"`
	Instructors  []instructorModel.InstructorModel `gorm:"many2many:course_instructors;joinForeignKey:CourseID;joinReferences:InstructorID"`
}

func (CourseModel) TableName() string {
	return "courses"
}

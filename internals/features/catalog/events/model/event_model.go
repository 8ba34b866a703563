package model

import (
	"time"

	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	venueModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
)

type EventModel struct {
	ID             uint       `gorm:"column:id;primaryKey"`
	Title          string     `gorm:"column:title;type:varchar(160);not null"`
	Description    *string    `gorm:"column:description;type:text"`
	EventTypeID    uint       `gorm:"column:event_type_id;not null"`
	DeliveryModeID uint       `gorm:"column:delivery_mode_id;not null"`
	VenueID        *uint      `gorm:"column:venue_id"`
	Capacity       *int       `gorm:"column:capacity"`
	StartsAt       *time.Time `gorm:"column:starts_at"`
	EndsAt         *time.Time `gorm:"column:ends_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	EventType    lookupModel.EventType    `gorm:"foreignKey:EventTypeID"`
	DeliveryMode lookupModel.DeliveryMode `gorm:"foreignKey:DeliveryModeID"`
	Venue        *venueModel.VenueModel   `gorm:"foreignKey:VenueID"`
}

func (EventModel) TableName() string {
	return "events"
}

package dto

import (
	"time"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/model"
	lookupDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	venueDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/dto"
)

type EventDTO struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Capacity     *int                `json:"capacity"`
	StartsAt     *time.Time          `json:"starts_at"`
	EndsAt       *time.Time          `json:"ends_at"`
	EventType    lookupDTO.LookupDTO `json:"event_type"`
	DeliveryMode lookupDTO.LookupDTO `json:"delivery_mode"`
	Venue        *venueDTO.VenueDTO  `json:"venue"`
}

type CreateEventRequest struct {
	Title          string     `json:"title" validate:"required,notblank,max=160"`
	Description    *string    `json:"description"`
	EventTypeID    uint       `json:"event_type_id" validate:"required"`
	DeliveryModeID uint       `json:"delivery_mode_id" validate:"required"`
	VenueID        *uint      `json:"venue_id" validate:"omitempty,gt=0"`
	Capacity       *int       `json:"capacity" validate:"omitempty,gt=0"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
}

type UpdateEventRequest struct {
	Title          *string    `json:"title" validate:"omitempty,notblank,max=160"`
	Description    *string    `json:"description"`
	EventTypeID    *uint      `json:"event_type_id" validate:"omitempty,gt=0"`
	DeliveryModeID *uint      `json:"delivery_mode_id" validate:"omitempty,gt=0"`
	VenueID        *uint      `json:"venue_id" validate:"omitempty,gt=0"`
	Capacity       *int       `json:"capacity" validate:"omitempty,gt=0"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
}

func (r CreateEventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		Title:          r.Title,
		Description:    r.Description,
		EventTypeID:    r.EventTypeID,
		DeliveryModeID: r.DeliveryModeID,
		VenueID:        r.VenueID,
		Capacity:       r.Capacity,
		StartsAt:       utc(r.StartsAt),
		EndsAt:         utc(r.EndsAt),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func ToEventDTO(m *model.EventModel) EventDTO {
	out := EventDTO{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Capacity:     m.Capacity,
		StartsAt:     utc(m.StartsAt),
		EndsAt:       utc(m.EndsAt),
		EventType:    lookupDTO.ToLookupDTO(&m.EventType),
		DeliveryMode: lookupDTO.ToLookupDTO(&m.DeliveryMode),
	}
	if m.Venue != nil {
		v := venueDTO.ToVenueDTO(m.Venue)
		out.Venue = &v
	}
	return out
}

func ToEventDTOs(rows []model.EventModel) []EventDTO {
	out := make([]EventDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToEventDTO(&rows[i]))
	}
	return out
}

package dto

import (
	"gorm.io/datatypes"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/model"
	instructorDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/dto"
	lookupDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	venueDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/dbtime"
)

// ============================
// Response DTOs
// ============================

// CourseListDTO is the summary used by list and search.
type CourseListDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	StartDate   *dbtime.Date `json:"start_date"`
	EndDate     *dbtime.Date `json:"end_date"`
}

// CourseDTO is the full record with relations.
type CourseDTO struct {
	ID                     uint                          `json:"id"`
	Title                  string                        `json:"title"`
	Description            *string                       `json:"description"`
	Capacity               *int                          `json:"capacity"`
	SessionCounts          *int                          `json:"session_counts"`
	SessionDurationMinutes *int                          `json:"session_duration_minutes"`
	StartDate              *dbtime.Date                  `json:"start_date"`
	EndDate                *dbtime.Date                  `json:"end_date"`
	DeliveryMode           lookupDTO.LookupDTO           `json:"delivery_mode"`
	Venue                  *venueDTO.VenueDTO            `json:"venue"`
	Instructors            []instructorDTO.InstructorDTO `json:"instructors"`
}

// DeletedCourseDTO is the body returned by DELETE /courses/:id.
type DeletedCourseDTO struct {
	Info         string    `json:"info"`
	CourseRecord CourseDTO `json:"course_record"`
}

// ============================
// Request DTOs
// ============================

type CreateCourseRequest struct {
	Title                  string       `json:"title" validate:"required,notblank,max=160"`
	Description            *string      `json:"description"`
	DeliveryModeID         uint         `json:"delivery_mode_id" validate:"required"`
	VenueID                *uint        `json:"venue_id" validate:"omitempty,gt=0"`
	InstructorIDs          []uint       `json:"instructor_ids" validate:"omitempty,dive,gt=0"`
	StartDate              *dbtime.Date `json:"start_date"`
	EndDate                *dbtime.Date `json:"end_date"`
	Capacity               *int         `json:"capacity" validate:"omitempty,gt=0"`
	SessionCounts          *int         `json:"session_counts" validate:"omitempty,gte=0"`
	SessionDurationMinutes *int         `json:"session_duration_minutes" validate:"omitempty,gt=0"`
}

// UpdateCourseRequest is a partial update. InstructorIDs, when present,
// replaces the whole set; an empty list clears it.
type UpdateCourseRequest struct {
	Title                  *string      `json:"title" validate:"omitempty,notblank,max=160"`
	Description            *string      `json:"description"`
	DeliveryModeID         *uint        `json:"delivery_mode_id" validate:"omitempty,gt=0"`
	VenueID                *uint        `json:"venue_id" validate:"omitempty,gt=0"`
	InstructorIDs          *[]uint      `json:"instructor_ids" validate:"omitempty,dive,gt=0" patch:"-"`
	StartDate              *dbtime.Date `json:"start_date"`
	EndDate                *dbtime.Date `json:"end_date"`
	Capacity               *int         `json:"capacity" validate:"omitempty,gt=0"`
	SessionCounts          *int         `json:"session_counts" validate:"omitempty,gte=0"`
	SessionDurationMinutes *int         `json:"session_duration_minutes" validate:"omitempty,gt=0"`
}

// ============================
// Converters
// ============================

func toDate(d *datatypes.Date) *dbtime.Date {
	if d == nil {
		return nil
	}
	v := dbtime.Date(*d)
	return &v
}

func ToDatatypesDate(d *dbtime.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	v := datatypes.Date(d.Time())
	return &v
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		Title:                  r.Title,
		Description:            r.Description,
		DeliveryModeID:         r.DeliveryModeID,
		VenueID:                r.VenueID,
		Capacity:               r.Capacity,
		SessionCounts:          r.SessionCounts,
		SessionDurationMinutes: r.SessionDurationMinutes,
		StartDate:              ToDatatypesDate(r.StartDate),
		EndDate:                ToDatatypesDate(r.EndDate),
	}
}

func ToCourseListDTO(m *model.CourseModel) CourseListDTO {
	return CourseListDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   toDate(m.StartDate),
		EndDate:     toDate(m.EndDate),
	}
}

func ToCourseListDTOs(rows []model.CourseModel) []CourseListDTO {
	out := make([]CourseListDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToCourseListDTO(&rows[i]))
	}
	return out
}

func ToCourseDTO(m *model.CourseModel) CourseDTO {
	out := CourseDTO{
		ID:                     m.ID,
		Title:                  m.Title,
		Description:            m.Description,
		Capacity:               m.Capacity,
		SessionCounts:          m.SessionCounts,
		SessionDurationMinutes: m.SessionDurationMinutes,
		StartDate:              toDate(m.StartDate),
		EndDate:                toDate(m.EndDate),
		DeliveryMode:           lookupDTO.ToLookupDTO(&m.DeliveryMode),
		Instructors:            instructorDTO.ToInstructorDTOs(m.Instructors),
	}
	if m.Venue != nil {
		v := venueDTO.ToVenueDTO(m.Venue)
		out.Venue = &v
	}
	return out
}

func ToCourseDTOs(rows []model.CourseModel) []CourseDTO {
	out := make([]CourseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToCourseDTO(&rows[i]))
	}
	return out
}

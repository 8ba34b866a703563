package dto

import (
	"time"

	lookupDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/model"
	userDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/dto"
)

type RegistrationDTO struct {
	ID          uint                `json:"id"`
	CourseID    uint                `json:"course_id"`
	User        userDTO.UserDTO     `json:"user"`
	Status      lookupDTO.LookupDTO `json:"status"`
	SubmittedAt time.Time           `json:"submitted_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateRegistrationRequest omits status_id to fall back to "Registered".
type CreateRegistrationRequest struct {
	UserID   uint  `json:"user_id" validate:"required,gt=0"`
	StatusID *uint `json:"status_id" validate:"omitempty,gt=0"`
}

type UpdateRegistrationRequest struct {
	StatusID uint `json:"status_id" validate:"required,gt=0"`
}

func ToRegistrationDTO(m *model.RegistrationModel) RegistrationDTO {
	return RegistrationDTO{
		ID:          m.ID,
		CourseID:    m.CourseID,
		User:        userDTO.ToUserDTO(&m.User),
		Status:      lookupDTO.ToLookupDTO(&m.Status),
		SubmittedAt: m.SubmittedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToRegistrationDTOs(rows []model.RegistrationModel) []RegistrationDTO {
	out := make([]RegistrationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToRegistrationDTO(&rows[i]))
	}
	return out
}

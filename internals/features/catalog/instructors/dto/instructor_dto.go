package dto

import "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"

type InstructorDTO struct {
	ID       uint    `json:"id"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
}

type CreateInstructorRequest struct {
	FullName string  `json:"full_name" validate:"required,notblank,max=120"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
	Email    *string `json:"email" validate:"omitempty,email,max=160"`
	Bio      *string `json:"bio"`
}

type UpdateInstructorRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,notblank,max=120"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
	Email    *string `json:"email" validate:"omitempty,email,max=160"`
	Bio      *string `json:"bio"`
}

func ToInstructorDTO(m *model.InstructorModel) InstructorDTO {
	return InstructorDTO{
		ID:       m.ID,
		FullName: m.FullName,
		Phone:    m.Phone,
		Email:    m.Email,
		Bio:      m.Bio,
	}
}

func ToInstructorDTOs(rows []model.InstructorModel) []InstructorDTO {
	out := make([]InstructorDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToInstructorDTO(&rows[i]))
	}
	return out
}

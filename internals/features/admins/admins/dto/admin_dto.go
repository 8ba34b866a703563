package dto

import (
	"time"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
)

// AdminDTO never carries the password hash.
type AdminDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=160"`
	FullName string `json:"full_name" validate:"required,notblank,max=160"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type UpdateAdminRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=160"`
	FullName *string `json:"full_name" validate:"omitempty,notblank,max=160"`
	Password *string `json:"password" validate:"omitempty,min=8,max=128" patch:"-"`
	IsActive *bool   `json:"is_active"`
}

func ToAdminDTO(m *model.AdminModel) AdminDTO {
	return AdminDTO{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToAdminDTOs(rows []model.AdminModel) []AdminDTO {
	out := make([]AdminDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToAdminDTO(&rows[i]))
	}
	return out
}

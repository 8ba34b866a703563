package dto

import (
	"time"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	FullName string  `json:"full_name" validate:"required,notblank,max=160"`
	Email    *string `json:"email" validate:"omitempty,email,max=160"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,notblank,max=160"`
	Email    *string `json:"email" validate:"omitempty,email,max=160"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
}

func ToUserDTO(m *model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserDTOs(rows []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToUserDTO(&rows[i]))
	}
	return out
}

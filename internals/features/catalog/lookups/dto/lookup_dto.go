package dto

import "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"

// ============================
// Response DTO
// ============================

type LookupDTO struct {
	ID          uint    `json:"id"`
	Label       string  `json:"label"`
	Description *string `json:"description"`
}

// ============================
// Request DTOs
// ============================

type CreateLookupRequest struct {
	Label       string  `json:"label" validate:"required,notblank"`
	Description *string `json:"description"`
}

type UpdateLookupRequest struct {
	Label       *string `json:"label" validate:"omitempty,notblank"`
	Description *string `json:"description"`
}

// ============================
// Converter
// ============================

func ToLookupDTO(m model.Lookup) LookupDTO {
	return LookupDTO{
		ID:          m.GetID(),
		Label:       m.GetLabel(),
		Description: m.GetDescription(),
	}
}

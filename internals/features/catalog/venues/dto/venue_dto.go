package dto

import "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"

type VenueDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	MapURL       *string `json:"map_url"`
	Notes        *string `json:"notes"`
	RoomCapacity *int    `json:"room_capacity"`
}

type CreateVenueRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=160"`
	Address      *string `json:"address"`
	MapURL       *string `json:"map_url" validate:"omitempty,max=2048"`
	Notes        *string `json:"notes"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,gt=0"`
}

// UpdateVenueRequest is a partial update; nil fields are left unchanged.
type UpdateVenueRequest struct {
	Name         *string `json:"name" validate:"omitempty,notblank,max=160"`
	Address      *string `json:"address"`
	MapURL       *string `json:"map_url" validate:"omitempty,max=2048"`
	Notes        *string `json:"notes"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,gt=0"`
}

func (r CreateVenueRequest) ToModel() *model.VenueModel {
	return &model.VenueModel{
		Name:         r.Name,
		Address:      r.Address,
		MapURL:       r.MapURL,
		Notes:        r.Notes,
		RoomCapacity: r.RoomCapacity,
	}
}

func ToVenueDTO(m *model.VenueModel) VenueDTO {
	return VenueDTO{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		MapURL:       m.MapURL,
		Notes:        m.Notes,
		RoomCapacity: m.RoomCapacity,
	}
}

func ToVenueDTOs(rows []model.VenueModel) []VenueDTO {
	out := make([]VenueDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToVenueDTO(&rows[i]))
	}
	return out
}

package model

import "time"

type VenueModel struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Address      *string   `gorm:"column:address;type:text" json:"address"`
	MapURL       *string   `gorm:"column:map_url;type:text" json:"map_url"`
	Notes        *string   `gorm:"column:notes;type:text" json:"notes"`
	RoomCapacity *int      `gorm:"column:room_capacity" json:"room_capacity"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VenueModel) TableName() string {
	return "venues"
}

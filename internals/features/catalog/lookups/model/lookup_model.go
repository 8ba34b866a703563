package model

import "time"

// Lookup is the shape shared by the small reference tables. The generic
// repository and service work through it so one implementation serves all.
type Lookup interface {
	GetID() uint
	GetLabel() string
	GetDescription() *string
	SetLabel(label string)
	SetDescription(description *string)
	Kind() Kind
}

// Kind carries the per-table rules.
type Kind struct {
	Entity           string
	MaxLabel         int
	DefaultSort      string
	DefaultDirection string
}

var (
	DeliveryModeKind       = Kind{Entity: "DeliveryMode", MaxLabel: 160, DefaultSort: "label", DefaultDirection: "asc"}
	EventTypeKind          = Kind{Entity: "EventType", MaxLabel: 160, DefaultSort: "label", DefaultDirection: "asc"}
	RegistrationStatusKind = Kind{Entity: "RegistrationStatus", MaxLabel: 64, DefaultSort: "id", DefaultDirection: "desc"}
)

// ============================
// DeliveryMode
// ============================

type DeliveryMode struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Label       string  `gorm:"column:label;type:varchar(160);uniqueIndex;not null"`
	Description *string `gorm:"column:description;type:text"`
}

func (DeliveryMode) TableName() string { return "delivery_modes" }

func (m *DeliveryMode) GetID() uint              { return m.ID }
func (m *DeliveryMode) GetLabel() string         { return m.Label }
func (m *DeliveryMode) GetDescription() *string  { return m.Description }
func (m *DeliveryMode) SetLabel(label string)    { m.Label = label }
func (m *DeliveryMode) SetDescription(d *string) { m.Description = d }
func (m *DeliveryMode) Kind() Kind               { return DeliveryModeKind }

// ============================
// RegistrationStatus
// ============================

type RegistrationStatus struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Label       string  `gorm:"column:label;type:varchar(64);uniqueIndex;not null"`
	Description *string `gorm:"column:description;type:text"`
}

func (RegistrationStatus) TableName() string { return "registration_statuses" }

func (m *RegistrationStatus) GetID() uint              { return m.ID }
func (m *RegistrationStatus) GetLabel() string         { return m.Label }
func (m *RegistrationStatus) GetDescription() *string  { return m.Description }
func (m *RegistrationStatus) SetLabel(label string)    { m.Label = label }
func (m *RegistrationStatus) SetDescription(d *string) { m.Description = d }
func (m *RegistrationStatus) Kind() Kind               { return RegistrationStatusKind }

// ============================
// EventType
// ============================

type EventType struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Label       string    `gorm:"column:label;type:varchar(160);uniqueIndex;not null"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (EventType) TableName() string { return "event_types" }

func (m *EventType) GetID() uint              { return m.ID }
func (m *EventType) GetLabel() string         { return m.Label }
func (m *EventType) GetDescription() *string  { return m.Description }
func (m *EventType) SetLabel(label string)    { m.Label = label }
func (m *EventType) SetDescription(d *string) { m.Description = d }
func (m *EventType) Kind() Kind               { return EventTypeKind }

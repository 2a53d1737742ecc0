package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusNew         AppointmentStatus = "NEW"
	StatusRescheduled AppointmentStatus = "RESCHEDULED"
	StatusComplete    AppointmentStatus = "COMPLETE"
	StatusCancelled   AppointmentStatus = "CANCELLED"
)

// ParseAppointmentStatus maps a raw string onto a known status value.
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	status := AppointmentStatus(raw)
	return status, status.IsValid()
}

// IsValid reports whether the status is one of the enumerated values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusRescheduled, StatusComplete, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled meeting between a provider and a
// client. Both participants reference the users table; nothing prevents
// the same user from holding both roles.
type Appointment struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	DateTime    time.Time         `gorm:"not null;index" json:"date_time"`
	ProviderID  int64             `gorm:"not null;index" json:"provider_id"`
	ClientID    int64             `gorm:"not null;index" json:"client_id"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Location    string            `gorm:"type:varchar(255)" json:"location,omitempty"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Client   User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EnsureUUID assigns a reference token if one has not been set yet.
func (a *Appointment) EnsureUUID() {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DateTime    time.Time `json:"dateTime" validate:"required"`
	Provider    uuid.UUID `json:"provider" validate:"required"`
	Client      uuid.UUID `json:"client" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=255"`
	Description string    `json:"description" validate:"omitempty"`
}

// UpdateAppointmentRequest carries a sparse update; nil fields are left
// unchanged. Provider and client are reference tokens that must resolve
// to existing users before they are applied.
type UpdateAppointmentRequest struct {
	DateTime    *time.Time `json:"dateTime"`
	Provider    *uuid.UUID `json:"provider"`
	Client      *uuid.UUID `json:"client"`
	Status      *string    `json:"status" validate:"omitempty,oneof=NEW RESCHEDULED COMPLETE CANCELLED"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
}

// ListAppointmentsQuery holds the optional listing criteria parsed from
// the query string. Nil fields place no restriction.
type ListAppointmentsQuery struct {
	User   *uuid.UUID
	From   *time.Time
	To     *time.Time
	Status *string
}

// Response DTOs

type AppointmentResponse struct {
	UUID        uuid.UUID    `json:"uuid"`
	DateTime    time.Time    `json:"dateTime"`
	Provider    UserResponse `json:"provider"`
	Client      UserResponse `json:"client"`
	Status      string       `json:"status"`
	Location    string       `json:"location,omitempty"`
	Description string       `json:"description,omitempty"`
}

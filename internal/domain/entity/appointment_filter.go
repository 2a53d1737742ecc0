package entity

import "time"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
// A nil field places no restriction on the result set.
type AppointmentFilter struct {
	ParticipantID *int64             // matches the provider or the client side
	From          *time.Time         // inclusive lower bound on DateTime
	To            *time.Time         // inclusive upper bound on DateTime
	Status        *AppointmentStatus // exact status match
}

package converter

import (
	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its wire
// representation. Provider and Client must be loaded on the entity.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		UUID:        appointment.UUID,
		DateTime:    appointment.DateTime,
		Provider:    *UserToResponse(&appointment.Provider),
		Client:      *UserToResponse(&appointment.Client),
		Status:      string(appointment.Status),
		Location:    appointment.Location,
		Description: appointment.Description,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentFromCreateRequest builds a new Appointment between two
// resolved participants. Status always starts as NEW and the reference
// token is assigned up front.
func AppointmentFromCreateRequest(req *dto.CreateAppointmentRequest, provider, client *entity.User) *entity.Appointment {
	appointment := &entity.Appointment{
		DateTime:    req.DateTime,
		ProviderID:  provider.ID,
		ClientID:    client.ID,
		Status:      entity.StatusNew,
		Location:    req.Location,
		Description: req.Description,
		Provider:    *provider,
		Client:      *client,
	}
	appointment.EnsureUUID()
	return appointment
}

// ApplyAppointmentUpdate overwrites only the non-reference fields present
// in the request. Provider and client resolution is the caller's job
// since it needs a user lookup.
func ApplyAppointmentUpdate(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	if req.DateTime != nil {
		appointment.DateTime = *req.DateTime
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Location != nil {
		appointment.Location = *req.Location
	}
	if req.Description != nil {
		appointment.Description = *req.Description
	}
}

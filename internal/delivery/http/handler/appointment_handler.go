package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
	"github.com/josephprado/schedjoeler-api/internal/usecase"
	"github.com/josephprado/schedjoeler-api/pkg/response"
	"github.com/josephprado/schedjoeler-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Zone-less timestamps are accepted alongside RFC 3339 and read as UTC.
const dateTimeLayout = "2006-01-02T15:04:05"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListAppointments filters by any combination of user, from, to and status
// query parameters. No parameters means every appointment.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), query)
	if err != nil {
		respondError(w, err, "Failed to get appointments")
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment uuid")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to get appointment")
		return
	}

	response.OK(w, []dto.AppointmentResponse{*appointment})
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.ErrorMessage(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create appointment")
		return
	}

	response.Created(w, []dto.AppointmentResponse{*appointment}, r.URL.Path+"/"+appointment.UUID.String())
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment uuid")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.ErrorMessage(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, "Failed to update appointment")
		return
	}

	response.OK(w, []dto.AppointmentResponse{*appointment})
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment uuid")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}

func parseListQuery(r *http.Request) (*dto.ListAppointmentsQuery, error) {
	query := &dto.ListAppointmentsQuery{}
	params := r.URL.Query()

	if raw := params.Get("user"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidQueryParam("user")
		}
		query.User = &id
	}

	if raw := params.Get("from"); raw != "" {
		from, err := parseDateTime(raw)
		if err != nil {
			return nil, errInvalidQueryParam("from")
		}
		query.From = &from
	}

	if raw := params.Get("to"); raw != "" {
		to, err := parseDateTime(raw)
		if err != nil {
			return nil, errInvalidQueryParam("to")
		}
		query.To = &to
	}

	if raw := params.Get("status"); raw != "" {
		if _, ok := entity.ParseAppointmentStatus(raw); !ok {
			return nil, errInvalidQueryParam("status")
		}
		query.Status = &raw
	}

	return query, nil
}

func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(dateTimeLayout, raw)
}

type queryParamError string

func (e queryParamError) Error() string {
	return "Invalid query parameter: " + string(e)
}

func errInvalidQueryParam(name string) error {
	return queryParamError(name)
}

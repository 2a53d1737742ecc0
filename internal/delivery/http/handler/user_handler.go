package handler

import (
	"encoding/json"
	"net/http"

	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/usecase"
	"github.com/josephprado/schedjoeler-api/pkg/response"
	"github.com/josephprado/schedjoeler-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		respondError(w, err, "Failed to get users")
		return
	}

	response.OK(w, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid user uuid")
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to get user")
		return
	}

	response.OK(w, []dto.UserResponse{*user})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.ErrorMessage(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create user")
		return
	}

	response.Created(w, []dto.UserResponse{*user}, r.URL.Path+"/"+user.UUID.String())
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid user uuid")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.ErrorMessage(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, "Failed to update user")
		return
	}

	response.OK(w, []dto.UserResponse{*user})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["uuid"])
	if err != nil {
		response.BadRequest(w, "Invalid user uuid")
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete user")
		return
	}

	response.NoContent(w)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/delivery/http/middleware"
	"github.com/josephprado/schedjoeler-api/internal/usecase"
	"github.com/josephprado/schedjoeler-api/pkg/response"
	"github.com/josephprado/schedjoeler-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.ErrorMessage(err))
		return
	}

	token, err := h.authUsecase.IssueToken(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to issue token")
		return
	}

	response.OK(w, []dto.TokenResponse{*token})
}

func (h *AuthHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		// Basic-authenticated requests carry no token to revoke.
		response.BadRequest(w, "No bearer token to revoke")
		return
	}

	if err := h.authUsecase.RevokeToken(r.Context(), tokenID); err != nil {
		respondError(w, err, "Failed to revoke token")
		return
	}

	response.NoContent(w)
}

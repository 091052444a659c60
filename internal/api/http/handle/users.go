package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-up/internal/app/services"
	"order-up/internal/domain/dto"
	"order-up/pkg/logger"
)

type UsersHandler struct {
	users *services.UsersService
	mylog logger.Logger
}

func NewUsersHandler(users *services.UsersService, mylog logger.Logger) *UsersHandler {
	return &UsersHandler{users: users, mylog: mylog}
}

func (h *UsersHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds dto.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.mylog.Action("parse_failed").Error("Failed to parse register request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		user, err := h.users.Register(r.Context(), creds.Username, creds.Password)
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Server error registering user"))
			return
		}
		jsonResponse(w, http.StatusCreated, user)
	}
}

func (h *UsersHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds dto.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.mylog.Action("parse_failed").Error("Failed to parse login request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		user, err := h.users.Authenticate(r.Context(), creds.Username, creds.Password)
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Server error logging in"))
			return
		}
		jsonResponse(w, http.StatusOK, user)
	}
}
